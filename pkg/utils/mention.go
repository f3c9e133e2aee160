package utils

import "regexp"

var (
	patternUserIDReplacer = regexp.MustCompile(`^<@!?([0-9]+)>$`)
	patternRoleIDReplacer = regexp.MustCompile(`^<@&([0-9]+)>$`)
	patternSnowflake      = regexp.MustCompile(`^[0-9]+$`)
)

// CleanUserID turns a user mention (<@123> or <@!123>) or a raw id into a
// plain user id, or "" if the input is neither.
func CleanUserID(input string) string {
	output := patternUserIDReplacer.ReplaceAllString(input, "$1")

	if !patternSnowflake.MatchString(output) {
		return ""
	}

	return output
}

// CleanRoleID turns a role mention (<@&123>) or a raw id into a plain role
// id, or "" if the input is neither.
func CleanRoleID(input string) string {
	output := patternRoleIDReplacer.ReplaceAllString(input, "$1")

	if !patternSnowflake.MatchString(output) {
		return ""
	}

	return output
}

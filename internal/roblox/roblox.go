// Package roblox is a minimal client for the public Roblox web API: username
// to id resolution and group rank lookups. All calls go through a shared
// politeness limiter so a burst of update commands cannot get the bot
// throttled platform-wide.
package roblox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	usersURL  = "https://users.roblox.com/v1/usernames/users"
	groupsURL = "https://groups.roblox.com/v2/users/%d/groups/roles"
)

// Client calls the Roblox API. The zero value is not usable; use New.
type Client struct {
	http    *http.Client
	limiter *rate.Limiter
}

// Default is the shared process-wide client.
var Default = New()

func New() *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(4), 8),
	}
}

// User is one resolved Roblox account.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserByUsername resolves a username to an account. Returns nil when no such
// account exists.
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := json.Marshal(struct {
		Usernames          []string `json:"usernames"`
		ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
	}{
		Usernames:          []string{username},
		ExcludeBannedUsers: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, usersURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roblox: username lookup returned status %d", resp.StatusCode)
	}

	var result struct {
		Data []User `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if len(result.Data) == 0 {
		return nil, nil
	}
	return &result.Data[0], nil
}

// GroupRank returns the user's rank (1-255) in the group, or 0 when the user
// is not a member.
func (c *Client) GroupRank(ctx context.Context, userID, groupID int64) (int64, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(groupsURL, userID), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("roblox: group roles lookup returned status %d", resp.StatusCode)
	}

	var result struct {
		Data []struct {
			Group struct {
				ID int64 `json:"id"`
			} `json:"group"`
			Role struct {
				Rank int64 `json:"rank"`
			} `json:"role"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}

	for _, membership := range result.Data {
		if membership.Group.ID == groupID {
			return membership.Role.Rank, nil
		}
	}
	return 0, nil
}

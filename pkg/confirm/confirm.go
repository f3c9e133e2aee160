// Package confirm implements the one-shot "destructive action with an undo
// button" protocol: a handler performs its mutation, posts a message with a
// button, and offers the invoker a bounded window to press it and undo.
package confirm

import (
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/peterhenryd/rowifi-v4/pkg/commands"
	"github.com/peterhenryd/rowifi-v4/pkg/standby"
)

// Confirmer ties the outbound client to the interaction router and the
// suppression set. One instance lives for the whole process.
type Confirmer struct {
	Sender     commands.Sender
	Router     *standby.Standby
	Suppressed *Set
}

// Default is assigned once from main; handlers call the package-level Offer.
var Default *Confirmer

// Options describe one confirmation wait.
type Options struct {
	ChannelID string
	// MessageID is the message carrying the undo button.
	MessageID string
	// InvokerID is the only user allowed to press the button.
	InvokerID string
	Timeout   time.Duration
	// Undo runs when the invoker presses the button, at most once.
	Undo func() error
	// Notice is sent as a follow-up after a successful undo.
	Notice string
}

// Button builds the action row holding a danger-style undo button.
func Button(label, customID string) discordgo.MessageComponent {
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Style:    discordgo.DangerButton,
				Label:    label,
				CustomID: customID,
			},
		},
	}
}

// Offer runs the confirmation protocol on the Default confirmer.
func Offer(opts Options) error {
	if Default == nil {
		return errors.New("confirm: Default confirmer not configured")
	}
	return Default.Offer(opts)
}

// Offer blocks until the invoker presses the button, the timeout elapses, or
// Undo fails. Presses by anyone else are acknowledged with an ephemeral
// notice and the wait continues. The message id is suppressed for the whole
// wait and unconditionally released on every exit path.
func (c *Confirmer) Offer(opts Options) error {
	c.Suppressed.Add(opts.MessageID)
	defer c.Suppressed.Remove(opts.MessageID)

	interactions, cancel := c.Router.WaitForComponent(opts.MessageID)
	defer cancel()

	timer := time.NewTimer(opts.Timeout)
	defer timer.Stop()

	for {
		select {
		case ci := <-interactions:
			if ci.AuthorID != opts.InvokerID {
				c.rejectForeign(ci)
				continue
			}

			if err := opts.Undo(); err != nil {
				return err
			}

			// Replace the original message contents with a button-less view.
			err := c.Sender.InteractionRespond(ci.Interaction, &discordgo.InteractionResponse{
				Type: discordgo.InteractionResponseUpdateMessage,
				Data: &discordgo.InteractionResponseData{
					Components: []discordgo.MessageComponent{},
				},
			})
			if err != nil {
				fmt.Println("Error acknowledging undo interaction:", err)
			}

			if opts.Notice != "" {
				_, err = c.Sender.FollowupMessageCreate(ci.Interaction, false, &discordgo.WebhookParams{
					Content: opts.Notice,
				})
				if err != nil {
					fmt.Println("Error sending undo notice:", err)
				}
			}
			return nil

		case <-timer.C:
			c.stripComponents(opts.ChannelID, opts.MessageID)
			return nil
		}
	}
}

func (c *Confirmer) rejectForeign(ci standby.ComponentInteraction) {
	err := c.Sender.InteractionRespond(ci.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	})
	if err != nil {
		fmt.Println("Error deferring foreign interaction:", err)
		return
	}

	_, err = c.Sender.FollowupMessageCreate(ci.Interaction, false, &discordgo.WebhookParams{
		Content: "This button is only interactable by the original command invoker",
		Flags:   1 << 6, // ephemeral
	})
	if err != nil {
		fmt.Println("Error sending ephemeral notice:", err)
	}
}

func (c *Confirmer) stripComponents(channelID, messageID string) {
	_, err := c.Sender.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    channelID,
		ID:         messageID,
		Components: []discordgo.MessageComponent{},
	})
	if err != nil {
		fmt.Println("Error removing components after timeout:", err)
	}
}

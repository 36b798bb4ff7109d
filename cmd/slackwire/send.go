package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"slackwire/internal/chat"
	"slackwire/internal/client"
	"slackwire/internal/config"
	"slackwire/internal/history"
	"slackwire/internal/template"

	"github.com/spf13/cobra"
)

func sendCmd() *cobra.Command {
	var (
		endpoint     string
		text         string
		channel      string
		username     string
		icon         string
		templateName string

		color       string
		title       string
		pretext     string
		fields      []string
		shortFields bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Compose and send a message to the webhook endpoint",
		Long: `Composes a message from the configured defaults, an optional template,
and command-line overrides, then posts it to the webhook endpoint.
Attachment fields are given as repeated --field Title=Value flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfigOrDefaults()

			if endpoint == "" {
				endpoint = cfg.Endpoint
			}
			if endpoint == "" {
				return fmt.Errorf("no webhook endpoint configured (set endpoint in %s or pass --endpoint)", resolveConfigPath())
			}

			c := client.New(endpoint, cfg.Defaults, logger)
			msg := c.Compose()

			if templateName != "" {
				templates, err := template.LoadFromDirectory(cfg.Templates.Dir, logger)
				if err != nil {
					return err
				}
				tpl, ok := template.Find(templates, templateName)
				if !ok {
					return fmt.Errorf("template %q not found in %s", templateName, cfg.Templates.Dir)
				}
				if err := tpl.Apply(msg); err != nil {
					return fmt.Errorf("apply template %q: %w", templateName, err)
				}
			}

			if text != "" {
				msg.SetText(text)
			}
			if channel != "" {
				msg.SetChannel(channel)
			}
			if username != "" {
				msg.SetUsername(username)
			}
			if icon != "" {
				msg.SetIcon(icon)
			}

			if color != "" || title != "" || pretext != "" || len(fields) > 0 {
				attachment, err := adHocAttachment(color, title, pretext, fields, shortFields)
				if err != nil {
					return err
				}
				if err := msg.Attach(attachment); err != nil {
					return err
				}
			}

			sendErr := msg.Send()
			recordDelivery(cmd.Context(), cfg, c, msg, sendErr)
			if sendErr != nil {
				return fmt.Errorf("send: %w", sendErr)
			}

			logger.Info("message sent",
				"endpoint", endpoint,
				"channel", msg.Channel(),
				"attachments", len(msg.Attachments()),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", "", "webhook URL (overrides config)")
	cmd.Flags().StringVarP(&text, "text", "t", "", "message text")
	cmd.Flags().StringVar(&channel, "channel", "", "destination channel")
	cmd.Flags().StringVar(&username, "username", "", "sender display name")
	cmd.Flags().StringVar(&icon, "icon", "", "sender icon (:emoji: or image URL)")
	cmd.Flags().StringVar(&templateName, "template", "", "message template to apply")
	cmd.Flags().StringVar(&color, "color", "", "attachment color (good, warning, danger, or #hex)")
	cmd.Flags().StringVar(&title, "title", "", "attachment title")
	cmd.Flags().StringVar(&pretext, "pretext", "", "attachment pretext")
	cmd.Flags().StringArrayVar(&fields, "field", nil, "attachment field as Title=Value (repeatable)")
	cmd.Flags().BoolVar(&shortFields, "short", false, "render attachment fields side by side")

	return cmd
}

// adHocAttachment builds the raw attachment data for the --color/--title/
// --field flags. It goes through the same data path as any other raw
// attachment, so it inherits the message's markdown-field set.
func adHocAttachment(color, title, pretext string, fields []string, short bool) (map[string]any, error) {
	data := map[string]any{}
	if color != "" {
		data["color"] = color
	}
	if title != "" {
		data["title"] = title
		data["fallback"] = title
	}
	if pretext != "" {
		data["pretext"] = pretext
	}
	if len(fields) > 0 {
		list := make([]any, 0, len(fields))
		for _, f := range fields {
			name, value, ok := strings.Cut(f, "=")
			if !ok {
				return nil, fmt.Errorf("invalid --field %q, want Title=Value", f)
			}
			list = append(list, map[string]any{
				"title": name,
				"value": value,
				"short": short,
			})
		}
		data["fields"] = list
	}
	return data, nil
}

// recordDelivery writes the attempt to the local history log. Log
// failures must not mask the send result, so they are only warned about.
func recordDelivery(ctx context.Context, cfg *config.Config, c *client.Client, msg *chat.Message, sendErr error) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.NewStore(cfg.History.DBPath, logger)
	if err != nil {
		logger.Warn("cannot open history store", "path", cfg.History.DBPath, "err", err)
		return
	}
	defer store.Close()

	if _, err := store.Prune(ctx, cfg.History.RetentionDays); err != nil {
		logger.Warn("cannot prune history", "err", err)
	}

	payload, err := json.Marshal(c.PreparePayload(msg))
	if err != nil {
		payload = nil
	}
	d := history.Delivery{
		Endpoint:    c.Endpoint(),
		Channel:     msg.Channel(),
		Text:        msg.Text(),
		Attachments: len(msg.Attachments()),
		Payload:     string(payload),
		Status:      history.StatusSent,
	}
	if sendErr != nil {
		d.Status = history.StatusFailed
		d.Error = sendErr.Error()
	}
	if err := store.Record(ctx, d); err != nil {
		logger.Warn("cannot record delivery", "err", err)
	}
}

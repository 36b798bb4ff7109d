// Package client holds webhook endpoint configuration and message
// defaults, manufactures pre-populated messages, and performs the
// submission over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"slackwire/internal/chat"
)

// ErrSubmission reports a failed webhook submission. Both payload
// encoding failures and transport failures wrap it, with the underlying
// cause preserved for errors.Is/As inspection.
var ErrSubmission = errors.New("submission failed")

// Options are the message defaults a client applies to every message it
// composes. JSON tags match the webhook configuration keys; unrecognized
// keys in a config document are ignored by decoding.
type Options struct {
	Channel               string   `json:"channel"`
	Username              string   `json:"username"`
	Icon                  string   `json:"icon"`
	LinkNames             bool     `json:"link_names"`
	UnfurlLinks           bool     `json:"unfurl_links"`
	UnfurlMedia           bool     `json:"unfurl_media"`
	AllowMarkdown         bool     `json:"allow_markdown"`
	MarkdownInAttachments []string `json:"markdown_in_attachments"`
}

// DefaultOptions returns the stock defaults: unfurl media, render
// markdown, everything else off or empty.
func DefaultOptions() Options {
	return Options{
		UnfurlMedia:   true,
		AllowMarkdown: true,
	}
}

// Client submits composed messages to a single webhook endpoint. It is
// long-lived; each outgoing message is composed fresh from the current
// defaults. Concurrent mutation of the defaults while composing is not
// synchronized.
type Client struct {
	endpoint string
	opts     Options
	http     *http.Client
	logger   *slog.Logger
}

// New creates a client for the given endpoint. A nil logger falls back
// to slog.Default.
func New(endpoint string, opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		endpoint: endpoint,
		opts:     opts,
		http:     newHTTPClient(30 * time.Second),
		logger:   logger,
	}
}

// Endpoint returns the webhook URL this client submits to.
func (c *Client) Endpoint() string { return c.endpoint }

// Options returns the current message defaults.
func (c *Client) Options() Options { return c.opts }

// Compose manufactures a new message carrying the client's current
// defaults. Later changes to the client do not affect messages already
// composed. The icon classification is derived here, when the default is
// applied.
func (c *Client) Compose() *chat.Message {
	m := chat.NewMessage(c)
	m.SetChannel(c.opts.Channel)
	m.SetUsername(c.opts.Username)
	m.SetIcon(c.opts.Icon)
	m.SetAllowMarkdown(c.opts.AllowMarkdown)
	m.SetMarkdownInAttachments(c.opts.MarkdownInAttachments)
	return m
}

// Send composes a message with the given text and submits it.
func (c *Client) Send(text string) error {
	return c.Compose().SendText(text)
}

// PreparePayload builds the canonical wire object for a message. The
// text, channel and username fields are always present, link_names is
// 1 or 0, and the icon field appears only when an icon is set, under the
// name its classification selects. Attachments is always an array,
// possibly empty.
func (c *Client) PreparePayload(m *chat.Message) chat.MessagePayload {
	p := chat.MessagePayload{
		Text:        m.Text(),
		Channel:     m.Channel(),
		Username:    m.Username(),
		UnfurlLinks: c.opts.UnfurlLinks,
		UnfurlMedia: c.opts.UnfurlMedia,
		Markdown:    m.AllowMarkdown(),
		Attachments: make([]chat.AttachmentPayload, 0, len(m.Attachments())),
	}
	if c.opts.LinkNames {
		p.LinkNames = 1
	}
	switch m.IconType() {
	case chat.IconTypeURL:
		p.IconURL = m.Icon()
	case chat.IconTypeEmoji:
		p.IconEmoji = m.Icon()
	}
	for _, a := range m.Attachments() {
		p.Attachments = append(p.Attachments, a.Payload())
	}
	return p
}

// SendMessage serializes the message and posts it to the endpoint.
func (c *Client) SendMessage(m *chat.Message) error {
	return c.SendMessageContext(context.Background(), m)
}

// SendMessageContext is SendMessage with caller-controlled cancellation.
// There is no retry; the submission succeeds or fails as a unit.
func (c *Client) SendMessageContext(ctx context.Context, m *chat.Message) error {
	payload := c.PreparePayload(m)

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode payload: %w", ErrSubmission, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: build request: %w", ErrSubmission, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSubmission, err)
	}
	defer resp.Body.Close()

	// The response body is not interpreted; drain it so the connection
	// can be reused.
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: endpoint returned %s", ErrSubmission, resp.Status)
	}

	c.logger.Debug("message submitted",
		"endpoint", c.endpoint,
		"channel", m.Channel(),
		"attachments", len(m.Attachments()),
	)
	return nil
}

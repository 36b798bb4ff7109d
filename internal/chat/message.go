package chat

import (
	"errors"
	"fmt"
	"strings"
)

// Icon classifications, named after the wire field each one selects.
const (
	IconTypeURL   = "icon_url"
	IconTypeEmoji = "icon_emoji"
)

// Sender submits a fully composed message to its destination. The client
// implements it; messages hold it as a non-owning reference so Send can
// be called straight off the builder chain.
type Sender interface {
	SendMessage(*Message) error
}

// Message is the top-level payload under construction. A message is built
// by one caller at a time; there is no internal locking.
type Message struct {
	text     string
	channel  string
	username string

	icon     string
	iconType string

	allowMarkdown         bool
	markdownInAttachments []string

	attachments []*Attachment

	sender Sender
}

// NewMessage creates an empty message bound to the given sender.
// A nil sender is allowed; Send then fails.
func NewMessage(sender Sender) *Message {
	return &Message{sender: sender}
}

func (m *Message) Text() string     { return m.text }
func (m *Message) Channel() string  { return m.channel }
func (m *Message) Username() string { return m.username }
func (m *Message) Icon() string     { return m.icon }

// IconType reports the classification derived by SetIcon, or "" when no
// icon is set. It is never set independently of the icon value.
func (m *Message) IconType() string { return m.iconType }

func (m *Message) AllowMarkdown() bool { return m.allowMarkdown }

// MarkdownInAttachments returns the markdown-field set newly attached
// attachments inherit.
func (m *Message) MarkdownInAttachments() []string { return m.markdownInAttachments }

func (m *Message) SetText(text string) *Message {
	m.text = text
	return m
}

func (m *Message) SetChannel(channel string) *Message {
	m.channel = channel
	return m
}

func (m *Message) SetUsername(username string) *Message {
	m.username = username
	return m
}

// SetIcon sets the sender icon and derives its classification: a value
// that starts and ends with a colon (len >= 2) is an emoji reference,
// any other non-empty value is a URL. The empty string clears both.
func (m *Message) SetIcon(icon string) *Message {
	if icon == "" {
		m.icon = ""
		m.iconType = ""
		return m
	}
	m.icon = icon
	if len(icon) >= 2 && strings.HasPrefix(icon, ":") && strings.HasSuffix(icon, ":") {
		m.iconType = IconTypeEmoji
	} else {
		m.iconType = IconTypeURL
	}
	return m
}

func (m *Message) SetAllowMarkdown(allow bool) *Message {
	m.allowMarkdown = allow
	return m
}

func (m *Message) EnableMarkdown() *Message  { return m.SetAllowMarkdown(true) }
func (m *Message) DisableMarkdown() *Message { return m.SetAllowMarkdown(false) }

// SetMarkdownInAttachments sets the markdown-field set that attachments
// built from raw data inherit when they carry no mrkdwn_in key of their
// own. The input is copied.
func (m *Message) SetMarkdownInAttachments(names []string) *Message {
	m.markdownInAttachments = append([]string(nil), names...)
	return m
}

// Attachments returns the ordered attachment sequence.
func (m *Message) Attachments() []*Attachment { return m.attachments }

// Attach appends an attachment. It accepts an existing *Attachment
// (adopted as-is) or raw key-value data, which is run through
// NewAttachmentFromData with the message's current markdown-field set as
// the inherited default. Anything else fails with ErrInvalidInput and
// leaves the sequence unchanged.
func (m *Message) Attach(v any) error {
	switch in := v.(type) {
	case *Attachment:
		m.attachments = append(m.attachments, in)
	case map[string]any:
		a, err := NewAttachmentFromData(in, m.markdownInAttachments)
		if err != nil {
			return err
		}
		m.attachments = append(m.attachments, a)
	default:
		return fmt.Errorf("attach: %w: got %T, want *Attachment or map[string]any", ErrInvalidInput, v)
	}
	return nil
}

// SetAttachments discards the current sequence and attaches each item in
// order, under the same type rules as Attach.
func (m *Message) SetAttachments(items []any) error {
	m.ClearAttachments()
	for _, item := range items {
		if err := m.Attach(item); err != nil {
			return err
		}
	}
	return nil
}

func (m *Message) ClearAttachments() *Message {
	m.attachments = nil
	return m
}

// Send submits the message through the sender it was composed with.
func (m *Message) Send() error {
	if m.sender == nil {
		return errors.New("send: message has no sender")
	}
	return m.sender.SendMessage(m)
}

// SendText sets the message text and submits.
func (m *Message) SendText(text string) error {
	m.SetText(text)
	return m.Send()
}

package chat

import (
	"errors"
	"testing"
)

// --- icon classification ---

func TestSetIcon_Classification(t *testing.T) {
	cases := []struct {
		icon string
		want string
	}{
		{":smile:", IconTypeEmoji},
		{"::", IconTypeEmoji},
		{":a:", IconTypeEmoji},
		{":not-closed", IconTypeURL},
		{"not-opened:", IconTypeURL},
		{"http://example.com/icon.png", IconTypeURL},
		{"plain", IconTypeURL},
		{":", IconTypeURL}, // single colon is too short to be an emoji ref
	}
	for _, tc := range cases {
		m := NewMessage(nil).SetIcon(tc.icon)
		if m.IconType() != tc.want {
			t.Errorf("SetIcon(%q): expected type %q, got %q", tc.icon, tc.want, m.IconType())
		}
		if m.Icon() != tc.icon {
			t.Errorf("SetIcon(%q): icon value not stored, got %q", tc.icon, m.Icon())
		}
	}
}

func TestSetIcon_ClearsValueAndType(t *testing.T) {
	m := NewMessage(nil).SetIcon(":smile:")
	m.SetIcon("")
	if m.Icon() != "" {
		t.Errorf("expected empty icon, got %q", m.Icon())
	}
	if m.IconType() != "" {
		t.Errorf("expected empty icon type, got %q", m.IconType())
	}
}

// --- attaching ---

func TestAttach_Typed(t *testing.T) {
	m := NewMessage(nil)
	a := NewAttachment().SetText("hi")
	if err := m.Attach(a); err != nil {
		t.Fatal(err)
	}
	if len(m.Attachments()) != 1 || m.Attachments()[0] != a {
		t.Error("typed attachment should be adopted as-is")
	}
}

func TestAttach_DataInheritsMarkdownFields(t *testing.T) {
	m := NewMessage(nil).SetMarkdownInAttachments([]string{"title"})
	if err := m.Attach(map[string]any{"text": "hi"}); err != nil {
		t.Fatal(err)
	}
	got := m.Attachments()[0].MarkdownFields()
	if len(got) != 1 || got[0] != "title" {
		t.Errorf("expected inherited [title], got %v", got)
	}
}

func TestAttach_DataOverridesMarkdownFields(t *testing.T) {
	m := NewMessage(nil).SetMarkdownInAttachments([]string{"title"})
	if err := m.Attach(map[string]any{"text": "hi", "mrkdwn_in": []any{}}); err != nil {
		t.Fatal(err)
	}
	if got := m.Attachments()[0].MarkdownFields(); len(got) != 0 {
		t.Errorf("explicit empty mrkdwn_in should win over inheritance, got %v", got)
	}
}

func TestAttach_InvalidInput(t *testing.T) {
	m := NewMessage(nil)
	if err := m.Attach(NewAttachment()); err != nil {
		t.Fatal(err)
	}

	err := m.Attach(42)
	if err == nil {
		t.Fatal("expected error for non-entity input")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if len(m.Attachments()) != 1 {
		t.Errorf("failed attach must leave the sequence unchanged, got %d attachments", len(m.Attachments()))
	}
}

func TestSetAttachments_ReplacesExisting(t *testing.T) {
	m := NewMessage(nil)
	c := NewAttachment().SetTitle("c")
	if err := m.Attach(c); err != nil {
		t.Fatal(err)
	}

	a := NewAttachment().SetTitle("a")
	b := NewAttachment().SetTitle("b")
	if err := m.SetAttachments([]any{a, b}); err != nil {
		t.Fatal(err)
	}

	got := m.Attachments()
	if len(got) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(got))
	}
	if got[0] != a || got[1] != b {
		t.Error("expected exactly [a, b] in order, prior attachments discarded")
	}
}

func TestClearAttachments(t *testing.T) {
	m := NewMessage(nil)
	if err := m.Attach(NewAttachment()); err != nil {
		t.Fatal(err)
	}
	m.ClearAttachments()
	if len(m.Attachments()) != 0 {
		t.Errorf("expected no attachments, got %d", len(m.Attachments()))
	}
}

// --- markdown toggles ---

func TestMarkdownToggles(t *testing.T) {
	m := NewMessage(nil)
	if m.EnableMarkdown(); !m.AllowMarkdown() {
		t.Error("EnableMarkdown should set the toggle")
	}
	if m.DisableMarkdown(); m.AllowMarkdown() {
		t.Error("DisableMarkdown should clear the toggle")
	}
}

// --- sending ---

type captureSender struct {
	got  []*Message
	fail error
}

func (s *captureSender) SendMessage(m *Message) error {
	s.got = append(s.got, m)
	return s.fail
}

func TestSend_DelegatesToSender(t *testing.T) {
	s := &captureSender{}
	m := NewMessage(s)
	if err := m.SendText("hello"); err != nil {
		t.Fatal(err)
	}
	if len(s.got) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(s.got))
	}
	if s.got[0].Text() != "hello" {
		t.Errorf("SendText should set the text first, got %q", s.got[0].Text())
	}
}

func TestSend_NoSender(t *testing.T) {
	if err := NewMessage(nil).Send(); err == nil {
		t.Error("expected error when message has no sender")
	}
}

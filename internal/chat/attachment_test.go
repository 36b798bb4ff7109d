package chat

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewAttachmentFromData_Scalars(t *testing.T) {
	a, err := NewAttachmentFromData(map[string]any{
		"fallback":    "fb",
		"text":        "body",
		"pretext":     "pre",
		"color":       "danger",
		"title":       "Title",
		"title_link":  "http://example.com",
		"author_name": "me",
		"author_link": "http://example.com/me",
		"author_icon": "http://example.com/me.png",
		"image_url":   "http://example.com/i.png",
		"thumb_url":   "http://example.com/t.png",
		"unknown_key": "ignored",
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Fallback() != "fb" || a.Text() != "body" || a.Pretext() != "pre" {
		t.Error("scalar text keys not mapped")
	}
	if a.Color() != "danger" || a.Title() != "Title" || a.TitleLink() != "http://example.com" {
		t.Error("title/color keys not mapped")
	}
	if a.AuthorName() != "me" || a.ImageURL() != "http://example.com/i.png" || a.ThumbURL() != "http://example.com/t.png" {
		t.Error("author/image keys not mapped")
	}
}

func TestNewAttachmentFromData_NestedFieldsAndActions(t *testing.T) {
	a, err := NewAttachmentFromData(map[string]any{
		"fields": []any{
			map[string]any{"title": "f1", "value": "v1", "short": true},
			NewField().SetTitle("f2").SetValue("v2"),
		},
		"actions": []any{
			map[string]any{
				"name":  "approve",
				"text":  "Approve",
				"style": StylePrimary,
				"value": "ok",
				"confirm": map[string]any{
					"title":        "Sure?",
					"text":         "Really approve?",
					"ok_text":      "Yes",
					"dismiss_text": "No",
				},
			},
		},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(a.Fields()) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(a.Fields()))
	}
	if a.Fields()[0].Title() != "f1" || !a.Fields()[0].Short() {
		t.Error("raw field data not mapped")
	}
	if a.Fields()[1].Title() != "f2" {
		t.Error("typed field not adopted")
	}

	if len(a.Actions()) != 1 {
		t.Fatalf("expected 1 action, got %d", len(a.Actions()))
	}
	act := a.Actions()[0]
	if act.Name() != "approve" || act.Type() != ActionTypeButton {
		t.Errorf("expected button action named approve, got %q/%q", act.Name(), act.Type())
	}
	if act.Confirm() == nil || act.Confirm().OkText() != "Yes" {
		t.Error("nested confirm data not mapped")
	}
}

func TestAttachment_FieldOrderPreserved(t *testing.T) {
	a := NewAttachment()
	for _, name := range []string{"one", "two", "three"} {
		if err := a.AddField(NewField().SetTitle(name)); err != nil {
			t.Fatal(err)
		}
	}
	p := a.Payload()
	want := []string{"one", "two", "three"}
	for i, f := range p.Fields {
		if f.Title != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], f.Title)
		}
	}
}

func TestAttachment_AddField_InvalidInput(t *testing.T) {
	a := NewAttachment()
	err := a.AddField("not a field")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAction_SetConfirm_Typed(t *testing.T) {
	c := NewConfirm().SetTitle("Sure?")
	a := NewAction()
	if err := a.SetConfirm(c); err != nil {
		t.Fatal(err)
	}
	if a.Confirm() != c {
		t.Error("typed confirm should be adopted as-is")
	}
}

func TestAction_SetConfirm_InvalidInput(t *testing.T) {
	a := NewAction()
	err := a.SetConfirm(42)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestActionPayload_ConfirmAlwaysPresent(t *testing.T) {
	// An action without a dialog still serializes a confirm object with
	// empty strings, never a missing key.
	body, err := json.Marshal(NewAction().SetName("a").Payload())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	confirm, ok := decoded["confirm"].(map[string]any)
	if !ok {
		t.Fatalf("expected confirm object, got %v", decoded["confirm"])
	}
	for _, key := range []string{"title", "text", "ok_text", "dismiss_text"} {
		if v, ok := confirm[key]; !ok || v != "" {
			t.Errorf("confirm[%q]: expected empty string, got %v (present=%v)", key, v, ok)
		}
	}
	if decoded["type"] != ActionTypeButton {
		t.Errorf("expected default type %q, got %v", ActionTypeButton, decoded["type"])
	}
}

func TestAttachmentPayload_EmptyListsNotNull(t *testing.T) {
	body, err := json.Marshal(NewAttachment().Payload())
	if err != nil {
		t.Fatal(err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"mrkdwn_in", "fields", "actions"} {
		if _, ok := decoded[key].([]any); !ok {
			t.Errorf("%s: expected an array, got %v", key, decoded[key])
		}
	}
}

func TestConfirm_FluentChain(t *testing.T) {
	c := NewConfirm().SetTitle("t").SetText("x").SetOkText("ok").SetDismissText("no")
	p := c.Payload()
	if p.Title != "t" || p.Text != "x" || p.OkText != "ok" || p.DismissText != "no" {
		t.Errorf("unexpected payload: %+v", p)
	}
}

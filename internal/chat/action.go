package chat

import "fmt"

// ActionTypeButton is the only interactive element type the legacy
// attachment format supports.
const ActionTypeButton = "button"

// Action styles understood by the remote renderer. Style is not validated;
// these are the conventional values.
const (
	StyleDefault = "default"
	StylePrimary = "primary"
	StyleDanger  = "danger"
)

// Action is a single interactive element inside an attachment.
type Action struct {
	name    string
	text    string
	style   string
	actType string
	value   string
	confirm *Confirm
}

func NewAction() *Action {
	return &Action{actType: ActionTypeButton}
}

// NewActionFromData builds an Action from raw key-value data. A nested
// "confirm" entry may itself be a *Confirm or raw data.
func NewActionFromData(data map[string]any) (*Action, error) {
	a := NewAction()
	if v, ok := stringValue(data, "name"); ok {
		a.SetName(v)
	}
	if v, ok := stringValue(data, "text"); ok {
		a.SetText(v)
	}
	if v, ok := stringValue(data, "style"); ok {
		a.SetStyle(v)
	}
	if v, ok := stringValue(data, "type"); ok {
		a.SetType(v)
	}
	if v, ok := stringValue(data, "value"); ok {
		a.SetValue(v)
	}
	if v, ok := data["confirm"]; ok {
		if err := a.SetConfirm(v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

func (a *Action) Name() string      { return a.name }
func (a *Action) Text() string      { return a.text }
func (a *Action) Style() string     { return a.style }
func (a *Action) Type() string      { return a.actType }
func (a *Action) Value() string     { return a.value }
func (a *Action) Confirm() *Confirm { return a.confirm }

func (a *Action) SetName(name string) *Action {
	a.name = name
	return a
}

func (a *Action) SetText(text string) *Action {
	a.text = text
	return a
}

func (a *Action) SetStyle(style string) *Action {
	a.style = style
	return a
}

func (a *Action) SetType(actType string) *Action {
	a.actType = actType
	return a
}

func (a *Action) SetValue(value string) *Action {
	a.value = value
	return a
}

// SetConfirm attaches a confirmation dialog. It accepts an existing
// *Confirm (adopted as-is) or raw key-value data; anything else fails
// with ErrInvalidInput.
func (a *Action) SetConfirm(v any) error {
	switch in := v.(type) {
	case *Confirm:
		a.confirm = in
	case map[string]any:
		a.confirm = NewConfirmFromData(in)
	default:
		return fmt.Errorf("set confirm: %w: got %T, want *Confirm or map[string]any", ErrInvalidInput, v)
	}
	return nil
}

// Payload returns the wire form. The confirm object is emitted even when
// no dialog was set, with all fields empty.
func (a *Action) Payload() ActionPayload {
	p := ActionPayload{
		Name:  a.name,
		Text:  a.text,
		Style: a.style,
		Type:  a.actType,
		Value: a.value,
	}
	if a.confirm != nil {
		p.Confirm = a.confirm.Payload()
	}
	return p
}

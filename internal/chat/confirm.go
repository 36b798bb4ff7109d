package chat

// Confirm is the confirmation dialog shown before an action takes effect.
// All four fields are plain text; none are required before serialization,
// unset fields go to the wire as empty strings.
type Confirm struct {
	title       string
	text        string
	okText      string
	dismissText string
}

func NewConfirm() *Confirm { return &Confirm{} }

// NewConfirmFromData builds a Confirm from raw key-value data.
// Unrecognized keys are ignored.
func NewConfirmFromData(data map[string]any) *Confirm {
	c := NewConfirm()
	if v, ok := stringValue(data, "title"); ok {
		c.SetTitle(v)
	}
	if v, ok := stringValue(data, "text"); ok {
		c.SetText(v)
	}
	if v, ok := stringValue(data, "ok_text"); ok {
		c.SetOkText(v)
	}
	if v, ok := stringValue(data, "dismiss_text"); ok {
		c.SetDismissText(v)
	}
	return c
}

func (c *Confirm) Title() string       { return c.title }
func (c *Confirm) Text() string        { return c.text }
func (c *Confirm) OkText() string      { return c.okText }
func (c *Confirm) DismissText() string { return c.dismissText }

func (c *Confirm) SetTitle(title string) *Confirm {
	c.title = title
	return c
}

func (c *Confirm) SetText(text string) *Confirm {
	c.text = text
	return c
}

func (c *Confirm) SetOkText(okText string) *Confirm {
	c.okText = okText
	return c
}

func (c *Confirm) SetDismissText(dismissText string) *Confirm {
	c.dismissText = dismissText
	return c
}

// Payload returns the wire form of the dialog.
func (c *Confirm) Payload() ConfirmPayload {
	return ConfirmPayload{
		Title:       c.title,
		Text:        c.text,
		OkText:      c.okText,
		DismissText: c.dismissText,
	}
}

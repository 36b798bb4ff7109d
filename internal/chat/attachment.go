package chat

import "fmt"

// Attachment is a rich-content block nested inside a message. Fields and
// actions keep their insertion order; that order is the render order.
type Attachment struct {
	fallback   string
	text       string
	pretext    string
	color      string
	title      string
	titleLink  string
	authorName string
	authorLink string
	authorIcon string
	imageURL   string
	thumbURL   string

	fields         []*Field
	actions        []*Action
	markdownFields []string
}

func NewAttachment() *Attachment { return &Attachment{} }

// NewAttachmentFromData builds an Attachment from raw key-value data.
// An explicit "mrkdwn_in" key wins over the inherited markdown-field set;
// when the key is absent the attachment takes over inherited as-is.
// Nested "fields" and "actions" entries may be typed values or raw maps.
func NewAttachmentFromData(data map[string]any, inherited []string) (*Attachment, error) {
	a := NewAttachment()

	scalars := map[string]func(string){
		"fallback":    func(s string) { a.SetFallback(s) },
		"text":        func(s string) { a.SetText(s) },
		"pretext":     func(s string) { a.SetPretext(s) },
		"color":       func(s string) { a.SetColor(s) },
		"title":       func(s string) { a.SetTitle(s) },
		"title_link":  func(s string) { a.SetTitleLink(s) },
		"author_name": func(s string) { a.SetAuthorName(s) },
		"author_link": func(s string) { a.SetAuthorLink(s) },
		"author_icon": func(s string) { a.SetAuthorIcon(s) },
		"image_url":   func(s string) { a.SetImageURL(s) },
		"thumb_url":   func(s string) { a.SetThumbURL(s) },
	}
	for key, set := range scalars {
		if v, ok := stringValue(data, key); ok {
			set(v)
		}
	}

	if v, ok := data["mrkdwn_in"]; ok {
		names, err := stringList(v)
		if err != nil {
			return nil, fmt.Errorf("attachment mrkdwn_in: %w", err)
		}
		a.SetMarkdownFields(names)
	} else {
		a.SetMarkdownFields(inherited)
	}

	if v, ok := data["fields"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("attachment fields: %w: got %T, want a list", ErrInvalidInput, v)
		}
		for _, item := range list {
			if err := a.AddField(item); err != nil {
				return nil, err
			}
		}
	}

	if v, ok := data["actions"]; ok {
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("attachment actions: %w: got %T, want a list", ErrInvalidInput, v)
		}
		for _, item := range list {
			if err := a.AddAction(item); err != nil {
				return nil, err
			}
		}
	}

	return a, nil
}

func (a *Attachment) Fallback() string   { return a.fallback }
func (a *Attachment) Text() string       { return a.text }
func (a *Attachment) Pretext() string    { return a.pretext }
func (a *Attachment) Color() string      { return a.color }
func (a *Attachment) Title() string      { return a.title }
func (a *Attachment) TitleLink() string  { return a.titleLink }
func (a *Attachment) AuthorName() string { return a.authorName }
func (a *Attachment) AuthorLink() string { return a.authorLink }
func (a *Attachment) AuthorIcon() string { return a.authorIcon }
func (a *Attachment) ImageURL() string   { return a.imageURL }
func (a *Attachment) ThumbURL() string   { return a.thumbURL }

func (a *Attachment) SetFallback(fallback string) *Attachment {
	a.fallback = fallback
	return a
}

func (a *Attachment) SetText(text string) *Attachment {
	a.text = text
	return a
}

func (a *Attachment) SetPretext(pretext string) *Attachment {
	a.pretext = pretext
	return a
}

func (a *Attachment) SetColor(color string) *Attachment {
	a.color = color
	return a
}

func (a *Attachment) SetTitle(title string) *Attachment {
	a.title = title
	return a
}

func (a *Attachment) SetTitleLink(link string) *Attachment {
	a.titleLink = link
	return a
}

func (a *Attachment) SetAuthorName(name string) *Attachment {
	a.authorName = name
	return a
}

func (a *Attachment) SetAuthorLink(link string) *Attachment {
	a.authorLink = link
	return a
}

func (a *Attachment) SetAuthorIcon(icon string) *Attachment {
	a.authorIcon = icon
	return a
}

func (a *Attachment) SetImageURL(url string) *Attachment {
	a.imageURL = url
	return a
}

func (a *Attachment) SetThumbURL(url string) *Attachment {
	a.thumbURL = url
	return a
}

// Fields returns the ordered field sequence.
func (a *Attachment) Fields() []*Field { return a.fields }

// AddField appends a field. It accepts a *Field or raw key-value data;
// anything else fails with ErrInvalidInput.
func (a *Attachment) AddField(v any) error {
	switch in := v.(type) {
	case *Field:
		a.fields = append(a.fields, in)
	case map[string]any:
		a.fields = append(a.fields, NewFieldFromData(in))
	default:
		return fmt.Errorf("add field: %w: got %T, want *Field or map[string]any", ErrInvalidInput, v)
	}
	return nil
}

// SetFields replaces the field sequence with the given items, in order.
func (a *Attachment) SetFields(items []any) error {
	a.ClearFields()
	for _, item := range items {
		if err := a.AddField(item); err != nil {
			return err
		}
	}
	return nil
}

func (a *Attachment) ClearFields() *Attachment {
	a.fields = nil
	return a
}

// Actions returns the ordered action sequence.
func (a *Attachment) Actions() []*Action { return a.actions }

// AddAction appends an action. It accepts an *Action or raw key-value
// data; anything else fails with ErrInvalidInput.
func (a *Attachment) AddAction(v any) error {
	switch in := v.(type) {
	case *Action:
		a.actions = append(a.actions, in)
	case map[string]any:
		act, err := NewActionFromData(in)
		if err != nil {
			return err
		}
		a.actions = append(a.actions, act)
	default:
		return fmt.Errorf("add action: %w: got %T, want *Action or map[string]any", ErrInvalidInput, v)
	}
	return nil
}

// SetActions replaces the action sequence with the given items, in order.
func (a *Attachment) SetActions(items []any) error {
	a.ClearActions()
	for _, item := range items {
		if err := a.AddAction(item); err != nil {
			return err
		}
	}
	return nil
}

func (a *Attachment) ClearActions() *Attachment {
	a.actions = nil
	return a
}

// MarkdownFields returns the names of fields rendered as markup.
func (a *Attachment) MarkdownFields() []string { return a.markdownFields }

// SetMarkdownFields replaces the set of field names rendered as markup.
// The input is copied so later caller mutation does not leak in.
func (a *Attachment) SetMarkdownFields(names []string) *Attachment {
	a.markdownFields = append([]string(nil), names...)
	return a
}

// Payload returns the wire form. The list-valued members are emitted as
// empty arrays rather than null when nothing was added.
func (a *Attachment) Payload() AttachmentPayload {
	p := AttachmentPayload{
		Fallback:   a.fallback,
		Text:       a.text,
		Pretext:    a.pretext,
		Color:      a.color,
		Title:      a.title,
		TitleLink:  a.titleLink,
		AuthorName: a.authorName,
		AuthorLink: a.authorLink,
		AuthorIcon: a.authorIcon,
		ImageURL:   a.imageURL,
		ThumbURL:   a.thumbURL,
		MarkdownIn: make([]string, 0, len(a.markdownFields)),
		Fields:     make([]FieldPayload, 0, len(a.fields)),
		Actions:    make([]ActionPayload, 0, len(a.actions)),
	}
	p.MarkdownIn = append(p.MarkdownIn, a.markdownFields...)
	for _, f := range a.fields {
		p.Fields = append(p.Fields, f.Payload())
	}
	for _, act := range a.actions {
		p.Actions = append(p.Actions, act.Payload())
	}
	return p
}

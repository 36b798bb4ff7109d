// Package template loads reusable message definitions from YAML files
// and applies them onto a message under construction.
package template

import "slackwire/internal/chat"

// Template is a named, reusable message skeleton. Empty fields leave the
// message's current value (usually the client default) untouched.
type Template struct {
	Name        string       `yaml:"name"`
	Text        string       `yaml:"text"`
	Channel     string       `yaml:"channel,omitempty"`
	Username    string       `yaml:"username,omitempty"`
	Icon        string       `yaml:"icon,omitempty"`
	Attachments []Attachment `yaml:"attachments,omitempty"`
}

// Attachment mirrors the wire attachment shape in YAML form.
type Attachment struct {
	Fallback   string   `yaml:"fallback,omitempty"`
	Text       string   `yaml:"text,omitempty"`
	Pretext    string   `yaml:"pretext,omitempty"`
	Color      string   `yaml:"color,omitempty"`
	Title      string   `yaml:"title,omitempty"`
	TitleLink  string   `yaml:"title_link,omitempty"`
	AuthorName string   `yaml:"author_name,omitempty"`
	AuthorLink string   `yaml:"author_link,omitempty"`
	AuthorIcon string   `yaml:"author_icon,omitempty"`
	ImageURL   string   `yaml:"image_url,omitempty"`
	ThumbURL   string   `yaml:"thumb_url,omitempty"`
	MarkdownIn []string `yaml:"mrkdwn_in,omitempty"`
	Fields     []Field  `yaml:"fields,omitempty"`
	Actions    []Action `yaml:"actions,omitempty"`
}

type Field struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
	Short bool   `yaml:"short,omitempty"`
}

type Action struct {
	Name    string   `yaml:"name"`
	Text    string   `yaml:"text"`
	Style   string   `yaml:"style,omitempty"`
	Value   string   `yaml:"value,omitempty"`
	Confirm *Confirm `yaml:"confirm,omitempty"`
}

type Confirm struct {
	Title       string `yaml:"title,omitempty"`
	Text        string `yaml:"text,omitempty"`
	OkText      string `yaml:"ok_text,omitempty"`
	DismissText string `yaml:"dismiss_text,omitempty"`
}

// Apply writes the template onto the message. Attachments go through the
// raw-data path, so a template attachment without mrkdwn_in inherits the
// message's markdown-field set like any other.
func (t *Template) Apply(m *chat.Message) error {
	if t.Text != "" {
		m.SetText(t.Text)
	}
	if t.Channel != "" {
		m.SetChannel(t.Channel)
	}
	if t.Username != "" {
		m.SetUsername(t.Username)
	}
	if t.Icon != "" {
		m.SetIcon(t.Icon)
	}
	for _, a := range t.Attachments {
		if err := m.Attach(a.data()); err != nil {
			return err
		}
	}
	return nil
}

func (a *Attachment) data() map[string]any {
	data := map[string]any{}
	scalars := map[string]string{
		"fallback":    a.Fallback,
		"text":        a.Text,
		"pretext":     a.Pretext,
		"color":       a.Color,
		"title":       a.Title,
		"title_link":  a.TitleLink,
		"author_name": a.AuthorName,
		"author_link": a.AuthorLink,
		"author_icon": a.AuthorIcon,
		"image_url":   a.ImageURL,
		"thumb_url":   a.ThumbURL,
	}
	for key, v := range scalars {
		if v != "" {
			data[key] = v
		}
	}
	if a.MarkdownIn != nil {
		data["mrkdwn_in"] = a.MarkdownIn
	}
	if len(a.Fields) > 0 {
		fields := make([]any, 0, len(a.Fields))
		for _, f := range a.Fields {
			fields = append(fields, map[string]any{
				"title": f.Title,
				"value": f.Value,
				"short": f.Short,
			})
		}
		data["fields"] = fields
	}
	if len(a.Actions) > 0 {
		actions := make([]any, 0, len(a.Actions))
		for _, act := range a.Actions {
			entry := map[string]any{
				"name":  act.Name,
				"text":  act.Text,
				"style": act.Style,
				"value": act.Value,
			}
			if act.Confirm != nil {
				entry["confirm"] = map[string]any{
					"title":        act.Confirm.Title,
					"text":         act.Confirm.Text,
					"ok_text":      act.Confirm.OkText,
					"dismiss_text": act.Confirm.DismissText,
				}
			}
			actions = append(actions, entry)
		}
		data["actions"] = actions
	}
	return data
}

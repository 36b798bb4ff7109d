package chat

// Wire representations of the incoming-webhook payload. Field names follow
// the legacy attachment format, not Block Kit. Scalar fields on nested
// entities are always emitted, even when never set, so that two messages
// built the same way serialize identically.

// MessagePayload is the top-level webhook payload.
type MessagePayload struct {
	Text        string              `json:"text"`
	Channel     string              `json:"channel"`
	Username    string              `json:"username"`
	LinkNames   int                 `json:"link_names"`
	UnfurlLinks bool                `json:"unfurl_links"`
	UnfurlMedia bool                `json:"unfurl_media"`
	Markdown    bool                `json:"mrkdwn"`
	IconURL     string              `json:"icon_url,omitempty"`
	IconEmoji   string              `json:"icon_emoji,omitempty"`
	Attachments []AttachmentPayload `json:"attachments"`
}

// AttachmentPayload is the wire form of a single attachment.
type AttachmentPayload struct {
	Fallback   string          `json:"fallback"`
	Text       string          `json:"text"`
	Pretext    string          `json:"pretext"`
	Color      string          `json:"color"`
	Title      string          `json:"title"`
	TitleLink  string          `json:"title_link"`
	AuthorName string          `json:"author_name"`
	AuthorLink string          `json:"author_link"`
	AuthorIcon string          `json:"author_icon"`
	ImageURL   string          `json:"image_url"`
	ThumbURL   string          `json:"thumb_url"`
	MarkdownIn []string        `json:"mrkdwn_in"`
	Fields     []FieldPayload  `json:"fields"`
	Actions    []ActionPayload `json:"actions"`
}

// FieldPayload is the wire form of a label/value field.
type FieldPayload struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// ActionPayload is the wire form of an interactive action. The confirm
// object is always present, zero-valued when no dialog was configured.
type ActionPayload struct {
	Name    string         `json:"name"`
	Text    string         `json:"text"`
	Style   string         `json:"style"`
	Type    string         `json:"type"`
	Value   string         `json:"value"`
	Confirm ConfirmPayload `json:"confirm"`
}

// ConfirmPayload is the wire form of a confirmation dialog.
type ConfirmPayload struct {
	Title       string `json:"title"`
	Text        string `json:"text"`
	OkText      string `json:"ok_text"`
	DismissText string `json:"dismiss_text"`
}

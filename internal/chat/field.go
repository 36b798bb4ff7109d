package chat

// Field is a label/value pair rendered inside an attachment. Short fields
// may be laid out side by side; full-width fields get their own row.
type Field struct {
	title string
	value string
	short bool
}

func NewField() *Field { return &Field{} }

// NewFieldFromData builds a Field from raw key-value data.
func NewFieldFromData(data map[string]any) *Field {
	f := NewField()
	if v, ok := stringValue(data, "title"); ok {
		f.SetTitle(v)
	}
	if v, ok := stringValue(data, "value"); ok {
		f.SetValue(v)
	}
	if v, ok := boolValue(data, "short"); ok {
		f.SetShort(v)
	}
	return f
}

func (f *Field) Title() string { return f.title }
func (f *Field) Value() string { return f.value }
func (f *Field) Short() bool   { return f.short }

func (f *Field) SetTitle(title string) *Field {
	f.title = title
	return f
}

func (f *Field) SetValue(value string) *Field {
	f.value = value
	return f
}

func (f *Field) SetShort(short bool) *Field {
	f.short = short
	return f
}

func (f *Field) Payload() FieldPayload {
	return FieldPayload{Title: f.title, Value: f.value, Short: f.short}
}

package form

// ControlKind is the input widget a renderer should draw for a field.
type ControlKind int

const (
	ControlInput  ControlKind = iota // single-line input (text, email, number, url)
	ControlSelect                    // single-select from options
	ControlRadio                     // mutually exclusive button group
	ControlFile                      // native file picker
)

// Control is one rendered form input: the widget kind, the descriptor it was
// derived from and the current answer value (empty when unanswered).
type Control struct {
	Kind     ControlKind
	Field    FieldDescriptor
	Value    string
	Selected string // dropdown/radio: the currently chosen option, or ""
}

// BuiltinFields is the fallback form used when a notice declares no custom
// fields: a bare name/email signup.
func BuiltinFields() []FieldDescriptor {
	return []FieldDescriptor{
		{Key: "name", Label: "Name", Type: FieldText, Required: true},
		{Key: "email", Label: "Email", Type: FieldEmail, Required: true},
	}
}

// RenderPlan maps an ordered descriptor list plus the current answers to the
// ordered list of controls a client should draw. Every control is keyed by its
// field's stable key, so reading a control's value back from the answer map
// round-trips exactly what was entered for that field and nothing else.
func RenderPlan(fields []FieldDescriptor, answers AnswerMap) []Control {
	if len(fields) == 0 {
		fields = BuiltinFields()
	}
	controls := make([]Control, 0, len(fields))
	for _, f := range fields {
		c := Control{Field: f}
		if a, ok := answers.Get(f.Key); ok {
			c.Value = a.Value
		}
		switch f.Type {
		case FieldDropdown:
			c.Kind = ControlSelect
			c.Selected = selectedOption(f.Options, c.Value)
		case FieldRadio:
			c.Kind = ControlRadio
			c.Selected = selectedOption(f.Options, c.Value)
		case FieldFile:
			c.Kind = ControlFile
		default:
			c.Kind = ControlInput
		}
		controls = append(controls, c)
	}
	return controls
}

// selectedOption returns value only when it is one of the declared options,
// so a stale answer from an edited option list renders as unselected.
func selectedOption(options []string, value string) string {
	for _, o := range options {
		if o == value {
			return o
		}
	}
	return ""
}

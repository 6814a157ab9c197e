package form

// AnswerKind tags the variant held by an Answer.
type AnswerKind int

const (
	AnswerText AnswerKind = iota
	AnswerChoice
	AnswerFile
)

// Answer is one collected value, tagged by the kind of field that produced
// it. Text and choice answers carry the raw string (a "number" field's answer
// stays a string, no coercion); file answers carry the stored path.
type Answer struct {
	Kind  AnswerKind
	Value string
}

// Text returns a text answer.
func Text(v string) Answer { return Answer{Kind: AnswerText, Value: v} }

// Choice returns a dropdown/radio answer.
func Choice(v string) Answer { return Answer{Kind: AnswerChoice, Value: v} }

// FilePath returns a file answer holding the stored file path.
func FilePath(p string) Answer { return Answer{Kind: AnswerFile, Value: p} }

// AnswerMap holds collected answers keyed by FieldDescriptor.Key.
type AnswerMap map[string]Answer

// Set records an answer for a field key.
func (m AnswerMap) Set(key string, a Answer) { m[key] = a }

// Get returns the answer for key and whether one exists.
func (m AnswerMap) Get(key string) (Answer, bool) {
	a, ok := m[key]
	return a, ok
}

// Strings flattens the map to plain string values, the shape submissions are
// persisted in.
func (m AnswerMap) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for k, a := range m {
		out[k] = a.Value
	}
	return out
}

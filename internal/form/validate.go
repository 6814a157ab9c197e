package form

import (
	"fmt"
	"strings"
)

// ValidationError is a per-field validation failure, keyed so it can be
// flagged against the offending control.
type ValidationError struct {
	FieldKey string
	Message  string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateFile checks an upload candidate against a field's file rules.
// It returns nil when no rules apply or the file passes.
//
// Type matching accepts an exact MIME match or a "major/*" wildcard. Word
// documents get a deliberately loose fallback: browsers report legacy Office
// files under wildly inconsistent MIME types, so any allowed type mentioning
// "word" also accepts files whose MIME mentions "word" or whose name ends in
// .doc/.docx.
func ValidateFile(name string, size int64, mimeType string, rules *FileRules) error {
	if rules == nil {
		return nil
	}

	if rules.MaxSizeInMB > 0 && float64(size) > rules.MaxSizeInMB*1024*1024 {
		return fmt.Errorf("file size must be less than %g MB", rules.MaxSizeInMB)
	}

	if len(rules.AllowedTypes) == 0 {
		return nil
	}

	for _, t := range rules.AllowedTypes {
		if t == mimeType {
			return nil
		}
		if major, ok := strings.CutSuffix(t, "/*"); ok && strings.HasPrefix(mimeType, major+"/") {
			return nil
		}
	}
	if allowsWordDoc(rules.AllowedTypes) && looksLikeWordDoc(name, mimeType) {
		return nil
	}

	return fmt.Errorf("allowed types: %s", strings.Join(subtypes(rules.AllowedTypes), ", "))
}

func allowsWordDoc(types []string) bool {
	for _, t := range types {
		if strings.Contains(t, "word") {
			return true
		}
	}
	return false
}

func looksLikeWordDoc(name, mimeType string) bool {
	return strings.Contains(mimeType, "word") ||
		strings.HasSuffix(name, ".doc") ||
		strings.HasSuffix(name, ".docx")
}

// subtypes renders allowed types for the error message, keeping just the
// part after the slash when there is one.
func subtypes(types []string) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		if _, sub, ok := strings.Cut(t, "/"); ok && sub != "" {
			out = append(out, sub)
			continue
		}
		out = append(out, t)
	}
	return out
}

// CheckRequired reports the keys of required fields left unanswered. File
// fields count a pending upload as an answer.
func CheckRequired(fields []FieldDescriptor, answers AnswerMap, files map[string]bool) []ValidationError {
	var errs []ValidationError
	for _, f := range fields {
		if !f.Required {
			continue
		}
		if f.Type == FieldFile {
			if !files[f.Key] {
				errs = append(errs, ValidationError{FieldKey: f.Key, Message: f.Label + " is required"})
			}
			continue
		}
		if a, ok := answers.Get(f.Key); !ok || a.Value == "" {
			errs = append(errs, ValidationError{FieldKey: f.Key, Message: f.Label + " is required"})
		}
	}
	return errs
}

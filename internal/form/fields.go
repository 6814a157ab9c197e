package form

import (
	"fmt"

	"github.com/google/uuid"
)

// FieldType enumerates the supported form field kinds.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldEmail    FieldType = "email"
	FieldNumber   FieldType = "number"
	FieldURL      FieldType = "url"
	FieldDropdown FieldType = "dropdown"
	FieldRadio    FieldType = "radio"
	FieldFile     FieldType = "file"
)

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldEmail, FieldNumber, FieldURL, FieldDropdown, FieldRadio, FieldFile:
		return true
	}
	return false
}

// FileRules constrains uploads for a file field.
type FileRules struct {
	AllowedTypes []string `bson:"allowed_types" json:"allowedTypes"` // exact MIME types or "major/*" wildcards
	MaxSizeInMB  float64  `bson:"max_size_in_mb" json:"maxSizeInMB"`
}

// FieldDescriptor describes one question of a registration form. Key is the
// stable identifier answers are stored under; Label is the editable display
// text. Keys survive label edits, so renaming a question never orphans the
// answers already collected for it.
type FieldDescriptor struct {
	Key       string     `bson:"key" json:"key"`
	Label     string     `bson:"label" json:"label" validate:"required"`
	Type      FieldType  `bson:"type" json:"type"`
	Required  bool       `bson:"required" json:"required"`
	Options   []string   `bson:"options,omitempty" json:"options,omitempty"` // dropdown/radio
	FileRules *FileRules `bson:"file_validation,omitempty" json:"fileValidation,omitempty"`
}

// AssignKeys gives every descriptor a stable key if it does not have one and
// deduplicates keys that collide. It mutates fields in place and returns them.
// Admin edits round-trip existing keys so stored answers stay addressable.
func AssignKeys(fields []FieldDescriptor) []FieldDescriptor {
	seen := make(map[string]bool, len(fields))
	for i := range fields {
		if fields[i].Type == "" {
			fields[i].Type = FieldText
		}
		key := fields[i].Key
		if key == "" || seen[key] {
			key = uuid.NewString()
		}
		seen[key] = true
		fields[i].Key = key
	}
	return fields
}

// FieldByKey returns the descriptor with the given key, or nil. Lookups fall
// back to the label so submissions from forms built before keys existed still
// resolve.
func FieldByKey(fields []FieldDescriptor, key string) *FieldDescriptor {
	for i := range fields {
		if fields[i].Key == key {
			return &fields[i]
		}
	}
	for i := range fields {
		if fields[i].Label == key {
			return &fields[i]
		}
	}
	return nil
}

// Validate checks structural soundness of a descriptor list. A dropdown or
// radio field with no options is tolerated; it simply renders with nothing to
// choose.
func Validate(fields []FieldDescriptor) error {
	for i, f := range fields {
		if f.Label == "" {
			return fmt.Errorf("field %d: label is required", i)
		}
		if f.Type != "" && !f.Type.Valid() {
			return fmt.Errorf("field %q: unknown type %q", f.Label, f.Type)
		}
		if f.FileRules != nil && f.FileRules.MaxSizeInMB < 0 {
			return fmt.Errorf("field %q: max size must be positive", f.Label)
		}
	}
	return nil
}

package form

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Reserved multipart part names that map to a registration's fixed columns
// rather than its details map.
const (
	PartName     = "name"
	PartEmail    = "email"
	PartEvent    = "event"
	PartNoticeID = "noticeId"
)

const (
	DefaultName  = "Guest"
	DefaultEmail = "guest@example.com"
)

// ErrPendingValidation is returned when assembly is attempted while any field
// still holds a validation error. No payload is produced in that state.
var ErrPendingValidation = errors.New("submission has unresolved validation errors")

// PendingFile is an upload admitted to a submission after passing validation.
type PendingFile struct {
	Name        string
	ContentType string
	Content     io.Reader
}

// Submission accumulates a visitor's answers against one notice and encodes
// them as the multipart payload the registration endpoint accepts. Files are
// admitted through AttachFile so a file that fails its field's rules never
// reaches the payload.
type Submission struct {
	Name     string
	Email    string
	Event    string
	NoticeID string
	Answers  AnswerMap
	Files    map[string]PendingFile

	errors map[string]string // field key -> current validation error
}

// NewSubmission starts an empty submission for the given notice.
func NewSubmission(event, noticeID string) *Submission {
	return &Submission{
		Event:    event,
		NoticeID: noticeID,
		Answers:  make(AnswerMap),
		Files:    make(map[string]PendingFile),
		errors:   make(map[string]string),
	}
}

// SetAnswer records a text/choice answer under the field's key.
func (s *Submission) SetAnswer(field FieldDescriptor, value string) {
	switch field.Type {
	case FieldDropdown, FieldRadio:
		s.Answers.Set(field.Key, Choice(value))
	default:
		s.Answers.Set(field.Key, Text(value))
	}
}

// AttachFile validates the file against the field's rules. On success the
// file joins the pending set; on failure it is dropped and the error recorded
// against the field until a valid file replaces it.
func (s *Submission) AttachFile(field FieldDescriptor, name string, size int64, mimeType string, content io.Reader) error {
	if err := ValidateFile(name, size, mimeType, field.FileRules); err != nil {
		delete(s.Files, field.Key)
		s.errors[field.Key] = err.Error()
		return &ValidationError{FieldKey: field.Key, Message: err.Error()}
	}
	delete(s.errors, field.Key)
	s.Files[field.Key] = PendingFile{Name: name, ContentType: mimeType, Content: content}
	return nil
}

// FieldError returns the current validation error for a field key, if any.
func (s *Submission) FieldError(key string) (string, bool) {
	msg, ok := s.errors[key]
	return msg, ok
}

// HasErrors reports whether any field currently holds a validation error.
func (s *Submission) HasErrors() bool { return len(s.errors) > 0 }

// EncodeMultipart writes the submission as multipart/form-data and returns
// the content type (including the boundary). Assembly is refused outright
// while validation errors are outstanding.
//
// Every answer is a text part and every pending file a file part, each named
// by its field key. That part name is what the server keys the details map by.
func (s *Submission) EncodeMultipart(w io.Writer) (string, error) {
	if s.HasErrors() {
		return "", ErrPendingValidation
	}

	mw := multipart.NewWriter(w)

	name := s.Name
	if name == "" {
		name = DefaultName
	}
	email := s.Email
	if email == "" {
		email = DefaultEmail
	}
	reserved := map[string]string{
		PartName:     name,
		PartEmail:    email,
		PartEvent:    s.Event,
		PartNoticeID: s.NoticeID,
	}
	for _, part := range []string{PartName, PartEmail, PartEvent, PartNoticeID} {
		if err := mw.WriteField(part, reserved[part]); err != nil {
			return "", err
		}
	}

	for key, a := range s.Answers {
		if err := mw.WriteField(key, a.Value); err != nil {
			return "", err
		}
	}

	for key, f := range s.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
			escapeQuotes(key), escapeQuotes(f.Name)))
		if f.ContentType != "" {
			h.Set("Content-Type", f.ContentType)
		}
		part, err := mw.CreatePart(h)
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return "", err
		}
	}

	if err := mw.Close(); err != nil {
		return "", err
	}
	return mw.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }

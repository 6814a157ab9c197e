package form

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"strings"
	"testing"
)

func decodeMultipart(t *testing.T, contentType string, body *bytes.Buffer) (map[string]string, map[string]string) {
	t.Helper()
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("bad content type %q: %v", contentType, err)
	}
	mr := multipart.NewReader(body, params["boundary"])
	values := map[string]string{}
	files := map[string]string{}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("reading part: %v", err)
		}
		data, _ := io.ReadAll(part)
		if part.FileName() != "" {
			files[part.FormName()] = part.FileName()
		} else {
			values[part.FormName()] = string(data)
		}
	}
	return values, files
}

func TestEncodeMultipartDefaultsAndParts(t *testing.T) {
	field := FieldDescriptor{Key: "k-team", Label: "Team Name", Type: FieldText}

	s := NewSubmission("Annual Sports Meet", "651f0c") // no name/email entered
	s.SetAnswer(field, "Alpha")

	var buf bytes.Buffer
	contentType, err := s.EncodeMultipart(&buf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	values, files := decodeMultipart(t, contentType, &buf)
	if values[PartName] != DefaultName || values[PartEmail] != DefaultEmail {
		t.Fatalf("missing name/email must default, got %q / %q", values[PartName], values[PartEmail])
	}
	if values[PartEvent] != "Annual Sports Meet" || values[PartNoticeID] != "651f0c" {
		t.Fatalf("reserved parts wrong: %v", values)
	}
	if values["k-team"] != "Alpha" {
		t.Fatalf("answer part keyed by field key missing: %v", values)
	}
	if len(files) != 0 {
		t.Fatalf("no files expected, got %v", files)
	}
}

func TestEncodeMultipartFileParts(t *testing.T) {
	field := FieldDescriptor{
		Key: "k-roster", Label: "Roster", Type: FieldFile,
		FileRules: &FileRules{AllowedTypes: []string{"application/pdf"}},
	}

	s := NewSubmission("Meet", "id1")
	s.Name = "Ada"
	s.Email = "ada@example.com"
	if err := s.AttachFile(field, "roster.pdf", 1024, "application/pdf", strings.NewReader("%PDF-1.4")); err != nil {
		t.Fatalf("attach: %v", err)
	}

	var buf bytes.Buffer
	contentType, err := s.EncodeMultipart(&buf)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	values, files := decodeMultipart(t, contentType, &buf)
	if values[PartName] != "Ada" {
		t.Fatalf("entered name must win over default, got %q", values[PartName])
	}
	if files["k-roster"] != "roster.pdf" {
		t.Fatalf("file part must be named by field key, got %v", files)
	}
}

func TestAttachFileRejectionBlocksAssembly(t *testing.T) {
	field := FieldDescriptor{
		Key: "k-roster", Label: "Roster", Type: FieldFile,
		FileRules: &FileRules{AllowedTypes: []string{"application/pdf"}, MaxSizeInMB: 1},
	}

	s := NewSubmission("Meet", "id1")
	err := s.AttachFile(field, "huge.pdf", 5*mb, "application/pdf", strings.NewReader(""))
	if err == nil {
		t.Fatal("oversized file must be rejected")
	}
	if _, ok := s.Files[field.Key]; ok {
		t.Fatal("rejected file must not stay pending")
	}
	if msg, ok := s.FieldError(field.Key); !ok || msg == "" {
		t.Fatal("rejection must record a field error")
	}

	var buf bytes.Buffer
	if _, err := s.EncodeMultipart(&buf); !errors.Is(err, ErrPendingValidation) {
		t.Fatalf("assembly must be blocked while errors stand, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatal("no payload may be written while errors stand")
	}

	// A valid replacement clears the error and unblocks assembly.
	if err := s.AttachFile(field, "ok.pdf", 1024, "application/pdf", strings.NewReader("%PDF")); err != nil {
		t.Fatalf("valid replacement rejected: %v", err)
	}
	if _, err := s.EncodeMultipart(&buf); err != nil {
		t.Fatalf("assembly should succeed after fix: %v", err)
	}
}

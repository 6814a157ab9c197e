package form

import (
	"strings"
	"testing"
)

const mb = 1024 * 1024

func TestValidateFileSizeLimit(t *testing.T) {
	rules := &FileRules{AllowedTypes: []string{"image/*"}, MaxSizeInMB: 5}

	if err := ValidateFile("photo.png", 6*mb, "image/png", rules); err == nil {
		t.Fatal("expected 6MB file to be rejected")
	} else if !strings.Contains(err.Error(), "5 MB") {
		t.Fatalf("size error should name the limit, got %q", err)
	}

	if err := ValidateFile("photo.png", 4*mb, "image/png", rules); err != nil {
		t.Fatalf("4MB png should pass: %v", err)
	}
}

func TestValidateFileWildcardType(t *testing.T) {
	rules := &FileRules{AllowedTypes: []string{"image/*"}, MaxSizeInMB: 5}

	err := ValidateFile("doc.pdf", 4*mb, "application/pdf", rules)
	if err == nil {
		t.Fatal("pdf should be rejected by image/* rule")
	}
	if !strings.Contains(err.Error(), "*") {
		t.Fatalf("type error should list allowed subtypes, got %q", err)
	}
}

func TestValidateFileExactType(t *testing.T) {
	rules := &FileRules{AllowedTypes: []string{"application/pdf", "image/jpeg"}}

	if err := ValidateFile("a.pdf", mb, "application/pdf", rules); err != nil {
		t.Fatalf("exact match should pass: %v", err)
	}
	if err := ValidateFile("a.gif", mb, "image/gif", rules); err == nil {
		t.Fatal("image/gif is not listed and should fail")
	}
}

func TestValidateFileWordFallback(t *testing.T) {
	rules := &FileRules{AllowedTypes: []string{"application/msword"}}

	// Browsers often report .docx as octet-stream; the name is trusted.
	if err := ValidateFile("resume.docx", mb, "application/octet-stream", rules); err != nil {
		t.Fatalf("docx by name should pass the word fallback: %v", err)
	}
	if err := ValidateFile("resume", mb, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", rules); err != nil {
		t.Fatalf("word MIME should pass the word fallback: %v", err)
	}
	if err := ValidateFile("resume.pdf", mb, "application/pdf", rules); err == nil {
		t.Fatal("pdf should not pass a word-only rule")
	}
}

func TestValidateFileNoRules(t *testing.T) {
	if err := ValidateFile("anything.bin", 500*mb, "application/octet-stream", nil); err != nil {
		t.Fatalf("no rules means no error, got %v", err)
	}
	if err := ValidateFile("anything.bin", 500*mb, "application/octet-stream", &FileRules{}); err != nil {
		t.Fatalf("empty rules mean no error, got %v", err)
	}
}

func TestCheckRequired(t *testing.T) {
	fields := []FieldDescriptor{
		{Key: "k1", Label: "Team Name", Type: FieldText, Required: true},
		{Key: "k2", Label: "Motto", Type: FieldText},
		{Key: "k3", Label: "Roster", Type: FieldFile, Required: true},
	}
	answers := AnswerMap{"k1": Text("Alpha")}

	errs := CheckRequired(fields, answers, map[string]bool{})
	if len(errs) != 1 || errs[0].FieldKey != "k3" {
		t.Fatalf("expected only the roster file to be missing, got %+v", errs)
	}

	errs = CheckRequired(fields, answers, map[string]bool{"k3": true})
	if len(errs) != 0 {
		t.Fatalf("expected no missing fields, got %+v", errs)
	}
}

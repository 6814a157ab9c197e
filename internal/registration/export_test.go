package registration

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"NoticeBoard/internal/form"
)

var exportTime = time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC)

func TestBuildRowsFieldedColumns(t *testing.T) {
	fields := []form.FieldDescriptor{
		{Key: "k-team", Label: "Team Name", Type: form.FieldText},
		{Key: "k-age", Label: "Age", Type: form.FieldNumber},
	}
	regs := []*Registration{
		{CreatedAt: exportTime, Details: map[string]string{"k-team": "Alpha", "k-age": "17"}},
		{CreatedAt: exportTime, Details: map[string]string{"k-team": "Beta"}}, // Age left blank
	}

	headers, rows := BuildRows(fields, regs)

	wantHeaders := []string{"Date", "Team Name", "Age"}
	if diff := cmp.Diff(wantHeaders, headers); diff != "" {
		t.Fatalf("headers mismatch (-want +got):\n%s", diff)
	}
	wantRows := [][]string{
		{"2025-03-14", "Alpha", "17"},
		{"2025-03-14", "Beta", ""},
	}
	if diff := cmp.Diff(wantRows, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRowsLegacyLabelKeys(t *testing.T) {
	fields := []form.FieldDescriptor{{Key: "k-team", Label: "Team Name", Type: form.FieldText}}
	regs := []*Registration{
		{CreatedAt: exportTime, Details: map[string]string{"Team Name": "Gamma"}},
	}

	_, rows := BuildRows(fields, regs)
	if rows[0][1] != "Gamma" {
		t.Fatalf("label-keyed answers must still export, got %v", rows[0])
	}
}

func TestBuildRowsGenericUnion(t *testing.T) {
	regs := []*Registration{
		{
			Name: "Ada", Email: "ada@example.com", Event: "Meet", CreatedAt: exportTime,
			Details: map[string]string{"noticeId": "n1", "Team Name": "Alpha"},
		},
		{
			Name: "Bob", Email: "bob@example.com", Event: "Fair", CreatedAt: exportTime,
			Details: map[string]string{"Booth": "12"},
		},
	}

	headers, rows := BuildRows(nil, regs)

	wantHeaders := []string{"Date", "Name", "Email", "Event", "Team Name", "noticeId", "Booth"}
	if diff := cmp.Diff(wantHeaders, headers); diff != "" {
		t.Fatalf("union headers mismatch (-want +got):\n%s", diff)
	}
	// Every row spans the full union; keys a registration lacks render blank.
	if len(rows[0]) != len(headers) || len(rows[1]) != len(headers) {
		t.Fatalf("rows must span the union: %v", rows)
	}
	if rows[0][4] != "Alpha" || rows[0][6] != "" {
		t.Fatalf("row 0 wrong: %v", rows[0])
	}
	if rows[1][4] != "" || rows[1][6] != "12" {
		t.Fatalf("row 1 wrong: %v", rows[1])
	}
}

func TestWriteWorkbook(t *testing.T) {
	headers := []string{"Date", "Team Name", "Age"}
	rows := [][]string{{"2025-03-14", "Alpha", "17"}}

	buf, err := WriteWorkbook(headers, rows)
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	f, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	want := [][]string{
		{"Date", "Team Name", "Age"},
		{"2025-03-14", "Alpha", "17"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sheet contents mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRowsGenericFixedColumnCollision(t *testing.T) {
	regs := []*Registration{{
		Name: "Ada", Email: "ada@example.com", Event: "Meet", CreatedAt: exportTime,
		Details: map[string]string{"Name": "nickname from form", "Booth": "7"},
	}}

	headers, rows := BuildRows(nil, regs)

	wantHeaders := []string{"Date", "Name", "Email", "Event", "Booth", "Name (details)"}
	if diff := cmp.Diff(wantHeaders, headers); diff != "" {
		t.Fatalf("collision headers mismatch (-want +got):\n%s", diff)
	}
	if rows[0][1] != "Ada" {
		t.Fatalf("fixed Name column must keep the top-level value, got %v", rows[0])
	}
	if rows[0][5] != "nickname from form" {
		t.Fatalf("colliding detail key must export under its own column, got %v", rows[0])
	}
}

package registration

import (
	"bytes"
	"sort"

	"github.com/xuri/excelize/v2"

	"NoticeBoard/internal/form"
)

const exportSheet = "Registrations"
const exportDateFormat = "2006-01-02"

// BuildRows projects registrations into a header row plus one data row each.
//
// With a declared field list the columns are Date followed by every field's
// label in declaration order; a registration missing an answer gets a blank
// cell, so the column set is stable across heterogeneous submissions. Without
// a field list it falls back to a generic flattened projection over the union
// of all detail keys.
func BuildRows(fields []form.FieldDescriptor, regs []*Registration) ([]string, [][]string) {
	if len(fields) > 0 {
		return fieldedRows(fields, regs)
	}
	return genericRows(regs)
}

func fieldedRows(fields []form.FieldDescriptor, regs []*Registration) ([]string, [][]string) {
	headers := make([]string, 0, len(fields)+1)
	headers = append(headers, "Date")
	for _, f := range fields {
		headers = append(headers, f.Label)
	}

	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		row := make([]string, 0, len(headers))
		row = append(row, r.CreatedAt.Format(exportDateFormat))
		for _, f := range fields {
			val, ok := r.Details[f.Key]
			if !ok {
				// answers stored before keys existed are still keyed by label
				val = r.Details[f.Label]
			}
			row = append(row, val)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// genericRows flattens fixed columns plus the union of all detail keys. Keys
// are merged in first-seen order, sorted within each registration, so the
// column order is deterministic for a given result set. A detail key that
// collides with a fixed column keeps its own column under a "(details)"
// suffix instead of being shadowed by the fixed value.
func genericRows(regs []*Registration) ([]string, [][]string) {
	fixed := []string{"Date", "Name", "Email", "Event"}
	isFixed := map[string]bool{}
	for _, h := range fixed {
		isFixed[h] = true
	}

	var detailKeys []string
	seen := map[string]bool{}
	for _, r := range regs {
		keys := make([]string, 0, len(r.Details))
		for k := range r.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				detailKeys = append(detailKeys, k)
			}
		}
	}

	headers := append([]string{}, fixed...)
	for _, k := range detailKeys {
		if isFixed[k] {
			headers = append(headers, k+" (details)")
			continue
		}
		headers = append(headers, k)
	}

	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		row := make([]string, 0, len(headers))
		row = append(row,
			r.CreatedAt.Format(exportDateFormat),
			r.Name,
			r.Email,
			r.Event,
		)
		for _, k := range detailKeys {
			row = append(row, r.Details[k])
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// WriteWorkbook renders headers and rows as a single-sheet xlsx workbook.
func WriteWorkbook(headers []string, rows [][]string) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", exportSheet)

	writeRow := func(rowIdx int, cells []string) error {
		anchor, err := excelize.CoordinatesToCellName(1, rowIdx)
		if err != nil {
			return err
		}
		vals := make([]interface{}, len(cells))
		for i, c := range cells {
			vals[i] = c
		}
		return f.SetSheetRow(exportSheet, anchor, &vals)
	}

	if err := writeRow(1, headers); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeRow(i+2, row); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}

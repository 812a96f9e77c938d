// Package export renders papers, marked sittings and practice plans as
// XLSX workbooks and JSON documents.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/session"
)

// Sheet names.
const (
	PaperSheet   = "Paper"
	AnswerSheet  = "Answers"
	MarkSheet    = "Marks"
	SummarySheet = "Summary"
)

// table is one sheet's worth of rows under a bold header.
type table struct {
	sheet  string
	header []string
	widths []float64
	rows   [][]any
}

// Paper builds a printable paper: one row per slot with an empty
// answer column.
func Paper(qs []paper.TestQuestion) (*excelize.File, error) {
	t := table{
		sheet:  PaperSheet,
		header: []string{"Q", "Question", "Answer", "Marks"},
		widths: []float64{5, 40, 20, 7},
	}
	for _, q := range qs {
		t.rows = append(t.rows, []any{q.SlotNumber, q.Text, "", q.MarkValue})
	}
	t.rows = append(t.rows, []any{"", "Total", "", paper.TotalMarks(qs)})
	return build(t)
}

// AnswerKey builds the answer key for qs.
func AnswerKey(qs []paper.TestQuestion) (*excelize.File, error) {
	t := table{
		sheet:  AnswerSheet,
		header: []string{"Q", "Question", "Answer", "Marks", "Type"},
		widths: []float64{5, 40, 20, 7, 28},
	}
	for _, q := range qs {
		t.rows = append(t.rows, []any{q.SlotNumber, q.Text, q.Answer, q.MarkValue, string(q.Type)})
	}
	return build(t)
}

// MarkSheetFor builds the mark sheet of a finalized sitting: the pupil's
// latest answer against the correct one for every slot, then a per-type
// summary sheet.
func MarkSheetFor(rec session.Record) (*excelize.File, error) {
	sum, err := session.BuildSummary(session.FromRecord(rec))
	if err != nil {
		return nil, err
	}

	awarded := make(map[string]int, len(rec.Marks))
	for _, m := range rec.Marks {
		awarded[m.QuestionID] = m.MarksAwarded
	}

	marks := table{
		sheet:  MarkSheet,
		header: []string{"Q", "Question", "Response", "Correct answer", "Awarded", "Out of"},
		widths: []float64{5, 40, 20, 20, 9, 8},
	}
	for _, q := range rec.Questions {
		var answer string
		if r, ok := rec.Responses[q.QuestionID]; ok {
			answer = r.Latest.Answer
		}
		marks.rows = append(marks.rows, []any{
			q.SlotNumber, q.Text, answer, q.Answer, awarded[q.QuestionID], q.MarkValue,
		})
	}
	marks.rows = append(marks.rows, []any{"", "Total", "", "", sum.Marks, sum.MaxMarks})

	summary := table{
		sheet:  SummarySheet,
		header: []string{"Type", "Questions", "Correct", "Marks", "Out of"},
		widths: []float64{28, 10, 9, 7, 8},
	}
	for _, tr := range sum.TypeResults {
		summary.rows = append(summary.rows, []any{string(tr.Type), tr.Questions, tr.Correct, tr.Marks, tr.MaxMarks})
	}
	summary.rows = append(summary.rows,
		[]any{},
		[]any{"Student", rec.Student},
		[]any{"Session", rec.SessionID},
		[]any{"Finished", string(rec.FinishReason)},
		[]any{"Percentage", strconv.FormatFloat(sum.Percentage, 'f', 1, 64) + "%"},
	)

	return build(marks, summary)
}

// PracticePlan builds one sheet per practice day.
func PracticePlan(plan *practice.Plan) (*excelize.File, error) {
	tables := make([]table, 0, len(plan.Days))
	for _, day := range plan.Days {
		t := table{
			sheet:  day.Day,
			header: []string{"#", "From Q", "Question", "Answer", "Type"},
			widths: []float64{4, 8, 40, 20, 28},
		}
		for i, q := range day.Questions {
			t.rows = append(t.rows, []any{i + 1, q.SlotNumber, q.Text, q.Answer, string(q.Type)})
		}
		tables = append(tables, t)
	}
	return build(tables...)
}

// Write streams f to w and closes it.
func Write(f *excelize.File, w io.Writer) error {
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func build(tables ...table) (*excelize.File, error) {
	f := excelize.NewFile()
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("header style: %w", err)
	}

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(t.sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("new sheet %s: %w", t.sheet, err)
		}
		if err := t.fill(f, bold); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", t.sheet, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func (t table) fill(f *excelize.File, headerStyle int) error {
	header := make([]any, len(t.header))
	for i, h := range t.header {
		header[i] = h
	}
	if err := f.SetSheetRow(t.sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(t.header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(t.sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, w := range t.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(t.sheet, col, col, w); err != nil {
			return err
		}
	}

	for i, row := range t.rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

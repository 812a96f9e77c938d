package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathpaper/internal/export"
	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored sitting as XLSX or JSON",
	Long: `Export a stored sitting. --kind selects what is written:

  marks  mark sheet with per-type summary (finalized sittings only)
  paper  the questions without answers
  key    the answer key
  plan   the latest practice plan built from the sitting

--format json writes the full session document (or the plan for
--kind plan) instead of a workbook.`,
	RunE: runExport,
}

func init() {
	f := exportCmd.Flags()
	f.String("session", "", "Session ID (default: most recent)")
	f.String("kind", "marks", "What to export (marks, paper, key, plan)")
	f.String("format", "xlsx", "Output format (xlsx, json)")
	f.StringP("output", "o", "-", "Output file path (- for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	v := viperForCmd(cmd)
	ctx := cmd.Context()

	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()

	ts, err := loadSession(ctx, v, st.Sessions())
	if err != nil {
		return err
	}
	rec := ts.Snapshot()
	kind, format, out := v.GetString("kind"), v.GetString("format"), v.GetString("output")

	var plan *practice.Plan
	if kind == "plan" {
		plan, err = st.Plans().Latest(ctx, rec.SessionID)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("no practice plan for session %s; run `mathpaper practice` first", rec.SessionID)
		}
		if err != nil {
			return fmt.Errorf("load practice plan: %w", err)
		}
	}

	switch format {
	case "json":
		return writeFile(out, func(w *os.File) error {
			if plan != nil {
				return export.PlanJSON(w, plan)
			}
			return export.SessionJSON(w, rec)
		})
	case "xlsx":
	default:
		return fmt.Errorf("unknown format %q: must be xlsx or json", format)
	}

	var f *excelize.File
	switch kind {
	case "marks":
		f, err = export.MarkSheetFor(rec)
	case "paper":
		f, err = export.Paper(rec.Questions)
	case "key":
		f, err = export.AnswerKey(rec.Questions)
	case "plan":
		f, err = export.PracticePlan(plan)
	default:
		return fmt.Errorf("unknown kind %q: must be marks, paper, key or plan", kind)
	}
	if err != nil {
		return fmt.Errorf("build workbook: %w", err)
	}
	return writeFile(out, func(w *os.File) error { return export.Write(f, w) })
}

package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/session"
)

// SessionJSON writes rec as indented JSON followed by a newline. The
// output decodes back into an identical Record.
func SessionJSON(w io.Writer, rec session.Record) error {
	return writeJSON(w, rec)
}

// PlanJSON writes plan as indented JSON followed by a newline.
func PlanJSON(w io.Writer, plan *practice.Plan) error {
	return writeJSON(w, plan)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}

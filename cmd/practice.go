package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathpaper/internal/export"
	"github.com/abhisek/mathpaper/internal/practice"
	"github.com/abhisek/mathpaper/internal/session"
	"github.com/abhisek/mathpaper/internal/tui"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Build a weekly practice plan from a marked sitting",
	Long: `Turn the questions a pupil got wrong into 30 fresh practice questions,
six a day from Monday to Friday. The plan is saved with the sitting.`,
	RunE: runPractice,
}

func init() {
	practiceCmd.Flags().String("session", "", "Session ID (default: most recent)")
	practiceCmd.Flags().Bool("answers", false, "Print answers next to questions")
	practiceCmd.Flags().String("xlsx", "", "Also write the plan to this XLSX file")
}

func runPractice(cmd *cobra.Command, args []string) error {
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

	sel := practice.NewSelector(newGenerator(v), session.NewID)
	plan, err := sel.GenerateWeeklyPractice(ts, time.Now())
	if errors.Is(err, practice.ErrNotFinalized) {
		return fmt.Errorf("session %s has not been marked yet", ts.ID())
	}
	if err != nil {
		return fmt.Errorf("build practice plan: %w", err)
	}
	if _, err := st.Plans().Save(ctx, plan); err != nil {
		return fmt.Errorf("save practice plan: %w", err)
	}

	lipgloss.Println(tui.RenderPlan(plan, v.GetBool("answers")))

	if path := v.GetString("xlsx"); path != "" {
		f, err := export.PracticePlan(plan)
		if err != nil {
			return err
		}
		if err := writeFile(path, func(w *os.File) error { return export.Write(f, w) }); err != nil {
			return err
		}
		fmt.Println("Plan written to", path)
	}
	return nil
}

package cmd

import (
	"fmt"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/session"
	"github.com/abhisek/mathpaper/internal/tui"
)

var sitCmd = &cobra.Command{
	Use:   "sit",
	Short: "Sit a new timed paper in the terminal",
	Long: `Generate a fresh paper and sit it against the clock. Answers are saved
as they are typed; the paper is marked when it is handed in or when the
time runs out.`,
	RunE: runSit,
}

func init() {
	sitCmd.Flags().String("student", "", "Name recorded on the sitting")
	sitCmd.Flags().Duration("duration", session.DefaultDuration, "Time allowed for the paper")

	// A bare `mathpaper` starts a sitting.
	rootCmd.RunE = runSit
	rootCmd.Flags().AddFlagSet(sitCmd.Flags())
}

func runSit(cmd *cobra.Command, args []string) error {
	v := viperForCmd(cmd)
	ctx := cmd.Context()

	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()

	duration := v.GetDuration("duration")
	if duration <= 0 {
		return fmt.Errorf("invalid duration %s", duration)
	}

	qs, err := paper.NewAssembler(newGenerator(v), session.NewID).Generate()
	if err != nil {
		return fmt.Errorf("generate paper: %w", err)
	}

	ts := session.New(session.NewID(), v.GetString("student"), qs, time.Now(), duration)
	repo := st.Sessions()
	if err := repo.Save(ctx, ts.Snapshot()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	sum, err := tui.Run(ts, repo)
	if err != nil {
		return err
	}

	lipgloss.Println(tui.RenderSummary(sum))
	fmt.Printf("Session %s saved. Build a practice plan with:\n  mathpaper practice --session %s\n",
		sum.SessionID, sum.SessionID)
	return nil
}

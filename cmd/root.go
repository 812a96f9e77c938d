package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mathpaper",
	Short: "Timed arithmetic papers with error-driven practice",
	Long: `mathpaper generates 36-question arithmetic papers, lets a pupil sit one
in the terminal against a 30 minute clock, marks it, and turns the
mistakes into a five-day practice plan.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides MATHPAPER_DB env var)")
	pf.Uint64("seed", 0, "Random seed for question generation (0 = random)")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(paperCmd)
	rootCmd.AddCommand(sitCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(blueprintCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(versionCmd)
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored sittings, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)

		st, err := openStore(v)
		if err != nil {
			return err
		}
		defer st.Close()

		rows, err := st.Sessions().List(cmd.Context(), v.GetInt("limit"))
		if err != nil {
			return err
		}

		// Header.
		fmt.Printf("%-36s  %-16s  %-16s  %s\n", "ID", "Student", "Started", "Marks")
		fmt.Println(strings.Repeat("─", 84))

		for _, r := range rows {
			student := r.Student
			if len(student) > 16 {
				student = student[:13] + "..."
			}
			marks := "in progress"
			if r.CompletedAt != nil {
				marks = fmt.Sprintf("%d/%d", r.TotalMarks, r.MaxMarks)
			}
			fmt.Printf("%-36s  %-16s  %-16s  %s\n",
				r.ID, student, r.StartedAt.Local().Format("2006-01-02 15:04"), marks)
		}

		fmt.Printf("\n%d sessions\n", len(rows))
		return nil
	},
}

func init() {
	sessionsCmd.Flags().Int("limit", 20, "Maximum number of sessions to list (0 = all)")
}

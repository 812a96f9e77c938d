package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpaper/internal/problemgen"
)

var markCmd = &cobra.Command{
	Use:   "mark <correct-answer> <pupil-answer>",
	Short: "Check one answer the way a paper is marked",
	Long: `Compare a pupil's answer with the correct answer using the marking rules
for a question type: equivalent fractions, decimals, thousands separators
and remainder notations are accepted where the type allows them.

Remainder questions need the question text to accept decimal or fraction
forms of the quotient, e.g. --text "47 ÷ 5 =".`,
	Args: cobra.ExactArgs(2),
	RunE: runMark,
}

func init() {
	markCmd.Flags().String("type", string(problemgen.TypeAddition), "Question type")
	markCmd.Flags().String("text", "", "Question text")
	markCmd.Flags().Int("marks", 1, "Marks the question is worth")
}

func runMark(cmd *cobra.Command, args []string) error {
	v := viperForCmd(cmd)

	qt := problemgen.QuestionType(v.GetString("type"))
	if !qt.Valid() {
		return fmt.Errorf("unknown question type %q", qt)
	}
	q := &problemgen.Question{Type: qt, Text: v.GetString("text"), Answer: args[0]}

	got := problemgen.Mark(args[1], q, v.GetInt("marks"))
	if got > 0 {
		fmt.Printf("\033[32m✓ Correct\033[0m  %d/%d\n", got, v.GetInt("marks"))
	} else {
		fmt.Printf("\033[31m✗ Wrong\033[0m  0/%d (answer: %s)\n", v.GetInt("marks"), args[0])
	}
	return nil
}

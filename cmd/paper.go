package cmd

import (
	"fmt"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathpaper/internal/export"
	"github.com/abhisek/mathpaper/internal/paper"
	"github.com/abhisek/mathpaper/internal/session"
	"github.com/abhisek/mathpaper/internal/tui"
)

var paperCmd = &cobra.Command{
	Use:   "paper",
	Short: "Generate a paper to print (no database)",
	Long: `Generate one 36-question paper and print it, optionally with answers.

With --xlsx the paper is written to a workbook instead, and --key adds a
separate answer-key workbook.`,
	RunE: runPaper,
}

func init() {
	paperCmd.Flags().Bool("answers", false, "Print the answer after each question")
	paperCmd.Flags().String("xlsx", "", "Write the paper to this XLSX file")
	paperCmd.Flags().String("key", "", "Write the answer key to this XLSX file")
}

func runPaper(cmd *cobra.Command, args []string) error {
	v := viperForCmd(cmd)

	qs, err := paper.NewAssembler(newGenerator(v), session.NewID).Generate()
	if err != nil {
		return fmt.Errorf("generate paper: %w", err)
	}

	xlsxPath, keyPath := v.GetString("xlsx"), v.GetString("key")
	if xlsxPath == "" && keyPath == "" {
		lipgloss.Println(tui.RenderPaper(qs, v.GetBool("answers")))
		return nil
	}

	if xlsxPath != "" {
		f, err := export.Paper(qs)
		if err != nil {
			return err
		}
		if err := writeFile(xlsxPath, func(w *os.File) error { return export.Write(f, w) }); err != nil {
			return err
		}
		fmt.Println("Paper written to", xlsxPath)
	}
	if keyPath != "" {
		f, err := export.AnswerKey(qs)
		if err != nil {
			return err
		}
		if err := writeFile(keyPath, func(w *os.File) error { return export.Write(f, w) }); err != nil {
			return err
		}
		fmt.Println("Answer key written to", keyPath)
	}
	return nil
}

// writeFile creates path and hands it to write, or uses stdout for "-".
func writeFile(path string, write func(*os.File) error) error {
	if path == "" || path == "-" {
		return write(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

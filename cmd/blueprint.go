package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathpaper/internal/paper"
)

var blueprintCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Print the 36-slot paper blueprint as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := paper.BlueprintYAML()
		if err != nil {
			return fmt.Errorf("marshal blueprint: %w", err)
		}
		fmt.Print(string(data))
		return nil
	},
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattmattheisen/smallcap-lab-study-coach/internal/curriculum"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the embedded curriculum for content problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		problems := curriculum.CheckAll()
		if len(problems) == 0 {
			fmt.Printf("Curriculum OK: %d days, no problems found.\n", curriculum.TotalDays)
			return nil
		}

		for _, p := range problems {
			fmt.Println(p)
		}
		return fmt.Errorf("%d problem(s) found", len(problems))
	},
}

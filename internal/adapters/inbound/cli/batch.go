package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textgate/textgate/internal/adapters/outbound/tui"
	"github.com/textgate/textgate/internal/application"
)

func newBatchCmd(g *globalFlags) *cobra.Command {
	var (
		jsonOutput  bool
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch <file1> [file2] ...",
		Short: "Validate many texts at once",
		Long:  "Validate every given file concurrently. Exits non-zero if any text is rejected.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, g)
			if err != nil {
				return err
			}

			svc := application.NewValidateService(rt.validator, concurrency)
			results, err := svc.ValidateFiles(cmd.Context(), args)
			if err != nil {
				return fmt.Errorf("batch failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, results); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderBatch(results))
			}

			var rejected int
			for _, r := range results {
				if !r.Verdict.IsValid {
					rejected++
				}
			}
			if rejected > 0 {
				return fmt.Errorf("%d of %d text(s) rejected", rejected, len(results))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output verdicts as JSON")
	cmd.Flags().IntVar(&concurrency, "concurrency", 8, "Maximum files validated in parallel")

	return cmd
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textgate/textgate/internal/adapters/outbound/tui"
	"github.com/textgate/textgate/internal/domain"
)

func newValidateCmd(g *globalFlags) *cobra.Command {
	var (
		text       string
		jsonOutput bool
		strict     bool
	)

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Check a text for non-English content, gibberish and length",
		Long:  "Validate a submitted text and print its verdict: penalty multiplier, validity and issues. Reads --text, a file, or stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, g)
			if err != nil {
				return err
			}

			input, err := readText(cmd, args, text)
			if err != nil {
				return err
			}

			verdict := rt.validator.Validate(input)
			rt.log.Debug("validated text", "words", verdict.WordCount, "penalty", verdict.PenaltyMultiplier)

			if jsonOutput {
				if err := renderJSON(cmd, verdict); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderVerdict(verdict))
			}

			if strict && !verdict.IsValid {
				return fmt.Errorf("text rejected: penalty %.2f is below %.2f", verdict.PenaltyMultiplier, domain.AcceptThreshold)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to validate (instead of a file or stdin)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output verdict as JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when the text is rejected")

	return cmd
}

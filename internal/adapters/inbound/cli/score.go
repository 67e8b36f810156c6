package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/textgate/textgate/internal/adapters/outbound/tui"
)

func newScoreCmd(g *globalFlags) *cobra.Command {
	var (
		text        string
		jsonOutput  bool
		endpoint    string
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "score [file|-]",
		Short: "Validate and score an essay",
		Long:  "Validate an essay and, if it is accepted, score it with the configured model and scale the score by the penalty multiplier. Rejected essays score 0.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, g)
			if err != nil {
				return err
			}
			if endpoint != "" {
				rt.cfg.Scorer.Endpoint = endpoint
				if err := rt.cfg.Validate(); err != nil {
					return fmt.Errorf("invalid --endpoint: %w", err)
				}
			}

			svc := rt.scoreService()

			if showHistory {
				entries, err := svc.History()
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			input, err := readText(cmd, args, text)
			if err != nil {
				return err
			}

			res, err := svc.Score(cmd.Context(), input)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, res)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScoreResult(res))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Essay text (instead of a file or stdin)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output result as JSON")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Scoring model endpoint; overrides scorer.endpoint")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show submission history")

	return cmd
}

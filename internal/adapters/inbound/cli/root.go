package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every command through persistent flags.
type globalFlags struct {
	dir      string
	logLevel string
	logJSON  bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:           "textgate",
		Short:         "Gate learner essays before they reach the scoring model",
		Long:          "textgate checks submitted texts for non-English content, gibberish and insufficient length, and scales essay scores by the resulting penalty.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.dir, "dir", ".", "Directory holding .textgate.yaml and the submission history")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides config")
	cmd.PersistentFlags().BoolVar(&g.logJSON, "log-json", false, "Emit logs as JSON")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd(g))
	cmd.AddCommand(newValidateCmd(g))
	cmd.AddCommand(newScoreCmd(g))
	cmd.AddCommand(newBatchCmd(g))
	cmd.AddCommand(newServeCmd(g))
	cmd.AddCommand(newMCPCmd(g))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

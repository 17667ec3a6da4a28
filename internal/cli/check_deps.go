package cli

import (
	"github.com/agentx-labs/stackhooks/internal/deps"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkDepsCmd)
}

var checkDepsCmd = &cobra.Command{
	Use:   "check-deps",
	Short: "Verify the tools required by the selected languages are on PATH",
	Long: `Reads the "langs" answer and looks up every tool the selected languages need on
the executable search path. Exits with status 1 and lists the missing tools when any
cannot be found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, a, err := loadProject()
		if err != nil {
			return err
		}
		checker := &deps.Checker{Out: cmd.OutOrStdout()}
		return checker.Run(a)
	},
}

package cli

import (
	"fmt"

	"github.com/agentx-labs/stackhooks/internal/deps"
	"github.com/agentx-labs/stackhooks/internal/flatten"
	"github.com/spf13/cobra"
)

var (
	skipDeps        bool
	keepScaffolding bool
)

func init() {
	runCmd.Flags().BoolVar(&skipDeps, "skip-deps", false, "Do not check for required tools")
	runCmd.Flags().BoolVar(&keepScaffolding, "keep-scaffolding", false, "Do not remove template-only paths")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every post-generation hook in order",
	Long: `Runs check-deps, flatten base-app, flatten langs and cleanup in that order,
stopping at the first failure. Answers are read once, before cleanup removes them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, a, err := loadProject()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		if !skipDeps {
			if err := (&deps.Checker{Out: w}).Run(a); err != nil {
				return err
			}
		}

		for _, target := range flatten.Targets() {
			f := &flatten.Flattener{Root: s.Root, Target: configuredTarget(s, target), Out: w}
			if err := f.Run(a); err != nil {
				return fmt.Errorf("flatten %s: %w", target.Name, err)
			}
		}

		if keepScaffolding {
			return nil
		}
		return newCleaner(s, cmd).Run()
	},
}

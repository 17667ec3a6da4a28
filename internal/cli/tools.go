package cli

import (
	"fmt"

	"github.com/agentx-labs/stackhooks/internal/deps"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(toolsCmd)
}

var toolsCmd = &cobra.Command{
	Use:   "tools [stack...]",
	Short: "List the tools each language stack requires and whether they are on PATH",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		stacks := args
		if len(stacks) == 0 {
			stacks = deps.Stacks()
		}

		checker := &deps.Checker{Out: w}
		for _, stack := range stacks {
			fmt.Fprintf(w, "%s:\n", stack)
			required := deps.RequiredTools(stack)
			if len(required) == 0 {
				fmt.Fprintln(w, "  (no tools required)")
				continue
			}
			result := checker.Check([]string{stack})
			found := make(map[string]string, len(result.Found))
			for _, p := range result.Found {
				found[p.Tool] = p.Path
			}
			for _, tool := range required {
				if path, ok := found[tool]; ok {
					fmt.Fprintf(w, "  [ OK ] %s found at %s\n", tool, path)
				} else {
					fmt.Fprintf(w, "  [MISS] %s not found\n", tool)
				}
			}
		}
		return nil
	},
}

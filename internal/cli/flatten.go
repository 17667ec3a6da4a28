package cli

import (
	"github.com/agentx-labs/stackhooks/internal/config"
	"github.com/agentx-labs/stackhooks/internal/flatten"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(flattenCmd)
}

var flattenCmd = &cobra.Command{
	Use:   "flatten <base-app|langs>",
	Short: "Merge the selected stack folders into the project root",
	Long: `Moves the files of each selected stack folder into the project root and removes
the emptied folder. "base-app" reads the base_app answer and folder, "langs" the
langs answer and folder. When stacks share a file name, the stack selected last wins.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{flatten.BaseApp.Name, flatten.Langs.Name},
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := flatten.Lookup(args[0])
		if err != nil {
			return err
		}
		s, a, err := loadProject()
		if err != nil {
			return err
		}
		f := &flatten.Flattener{
			Root:   s.Root,
			Target: configuredTarget(s, target),
			Out:    cmd.OutOrStdout(),
		}
		return f.Run(a)
	},
}

// configuredTarget applies the source directory names from settings.
func configuredTarget(s *config.Settings, t flatten.Target) flatten.Target {
	switch t.Name {
	case flatten.BaseApp.Name:
		return t.WithSourceDir(s.BaseAppDir)
	case flatten.Langs.Name:
		return t.WithSourceDir(s.LangsDir)
	}
	return t
}

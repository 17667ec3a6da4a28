package cli

import (
	"github.com/agentx-labs/stackhooks/internal/cleanup"
	"github.com/agentx-labs/stackhooks/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanupCmd)
}

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove template-only scaffolding from the generated project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		return newCleaner(s, cmd).Run()
	},
}

func newCleaner(s *config.Settings, cmd *cobra.Command) *cleanup.Cleaner {
	return &cleanup.Cleaner{
		Root:  s.Root,
		Paths: cleanup.Paths(s.BaseAppDir, s.LangsDir, s.AnswersFile),
		Out:   cmd.OutOrStdout(),
	}
}

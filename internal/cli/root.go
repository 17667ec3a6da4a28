package cli

import (
	"github.com/agentx-labs/stackhooks/internal/answers"
	"github.com/agentx-labs/stackhooks/internal/branding"
	"github.com/agentx-labs/stackhooks/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	projectDir  string
	answersFile string
	configFile  string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&projectDir, "dir", "C", ".", "Project root the hooks operate on")
	rootCmd.PersistentFlags().StringVar(&answersFile, "answers-file", "", "Answers file (default "+branding.AnswersFile()+")")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default <dir>/"+branding.SettingsFile()+")")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` runs the post-generation hooks of a multi-stack project template:
it checks the tools the selected languages need, merges the selected base app and
language folders into the project root, and removes template-only scaffolding.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// loadSettings resolves settings for this invocation, applying the
// --answers-file flag over config.
func loadSettings() (*config.Settings, error) {
	s, err := config.Load(projectDir, configFile)
	if err != nil {
		return nil, err
	}
	if answersFile != "" {
		s.AnswersFile = answersFile
	}
	return s, nil
}

// loadProject resolves settings and reads the answers file.
func loadProject() (*config.Settings, answers.Answers, error) {
	s, err := loadSettings()
	if err != nil {
		return nil, nil, err
	}
	a, err := answers.Load(s.AnswersPath())
	if err != nil {
		return nil, nil, err
	}
	return s, a, nil
}

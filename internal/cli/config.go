package cli

import (
	"fmt"

	"github.com/agentx-labs/stackhooks/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show resolved hook settings",
	Long: `Show settings resolved from defaults, the project settings file and
environment variables.`,
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a setting value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Get(args[0]))
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if s.ConfigFile != "" {
			fmt.Fprintf(w, "# from %s\n", s.ConfigFile)
		}
		for _, key := range config.Keys() {
			fmt.Fprintf(w, "%s = %s\n", key, s.Get(key))
		}
		return nil
	},
}

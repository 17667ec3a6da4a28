package cli

import (
	"fmt"

	"github.com/agentx-labs/stackhooks/internal/answers"
	"github.com/spf13/cobra"
)

func init() {
	answersCmd.AddCommand(answersShowCmd)
	answersCmd.AddCommand(answersValidateCmd)
	rootCmd.AddCommand(answersCmd)
}

var answersCmd = &cobra.Command{
	Use:   "answers",
	Short: "Inspect the template answers file",
}

var answersShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded answers and the selected stacks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, a, err := loadProject()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "Answers file: %s\n", s.AnswersPath())
		if src := a.SourcePath(); src != "" {
			fmt.Fprintf(w, "Template: %s\n", src)
		}
		if v, ok := a.TemplateVersion(); ok {
			fmt.Fprintf(w, "Template version: %s\n", v)
		}
		fmt.Fprintf(w, "Base app: %v\n", a.Selection(answers.KeyBaseApp))
		fmt.Fprintf(w, "Languages: %v\n", a.Selection(answers.KeyLangs))

		if len(a) == 0 {
			fmt.Fprintln(w, "\n(no answers recorded)")
			return nil
		}
		out, err := answers.Marshal(a)
		if err != nil {
			return fmt.Errorf("rendering answers: %w", err)
		}
		fmt.Fprintf(w, "\n%s", out)
		return nil
	},
}

var answersValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the answers file against the answers schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		path := s.AnswersPath()
		fmt.Fprintf(w, "Answers validation: %s\n", path)

		result, err := answers.ValidateFile(path)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			return fmt.Errorf("answers validation failed: %w", err)
		}
		if result.Valid {
			fmt.Fprintln(w, "  [ OK ] Valid answers file")
			return nil
		}

		fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
			} else {
				fmt.Fprintf(w, "    - %s\n", issue.Message)
			}
		}
		return fmt.Errorf("answers file %s has %d validation issue(s)", path, len(result.Issues))
	},
}

// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed so forks can rename the binary,
// the environment prefix and the default answers file without touching code.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName      string `yaml:"cli_name"`
	DisplayName  string `yaml:"display_name"`
	Description  string `yaml:"description"`
	EnvPrefix    string `yaml:"env_prefix"`
	SettingsFile string `yaml:"settings_file"`
	AnswersFile  string `yaml:"answers_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:      "stackhooks",
			DisplayName:  "StackHooks",
			Description:  "Lifecycle hooks for multi-stack project templates",
			EnvPrefix:    "STACKHOOKS",
			SettingsFile: ".stackhooks.yaml",
			AnswersFile:  ".copier-answers.yml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "stackhooks").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "STACKHOOKS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// SettingsFile returns the project-level settings file name looked up in
// the project root when no --config flag is given.
func SettingsFile() string { load(); return defaults.SettingsFile }

// AnswersFile returns the default answers file written by the template tool.
func AnswersFile() string { load(); return defaults.AnswersFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("dir") → "STACKHOOKS_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

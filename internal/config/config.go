package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/agentx-labs/stackhooks/internal/branding"
	"github.com/spf13/viper"
)

const fileType = "yaml"

// Setting keys.
const (
	KeyAnswersFile = "answers_file"
	KeyBaseAppDir  = "base_app_dir"
	KeyLangsDir    = "langs_dir"
)

// Default source directory names inside the generated project.
const (
	DefaultBaseAppDir = "base_app"
	DefaultLangsDir   = "langs"
)

// Settings holds the resolved configuration for one hook invocation.
type Settings struct {
	Root        string // project root the hooks operate on
	AnswersFile string // relative to Root unless absolute
	BaseAppDir  string
	LangsDir    string
	ConfigFile  string // settings file that was read, empty if none

	v *viper.Viper
}

// Load resolves settings for the project at root. When configFile is empty,
// <root>/.stackhooks.yaml is read if it exists; an explicitly named file
// must exist.
func Load(root, configFile string) (*Settings, error) {
	if root == "" {
		root = "."
	}

	v := viper.New()
	v.SetDefault(KeyAnswersFile, branding.AnswersFile())
	v.SetDefault(KeyBaseAppDir, DefaultBaseAppDir)
	v.SetDefault(KeyLangsDir, DefaultLangsDir)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()

	if configFile == "" {
		candidate := filepath.Join(root, branding.SettingsFile())
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType(fileType)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file %s: %w", configFile, err)
		}
	}

	return &Settings{
		Root:        root,
		AnswersFile: v.GetString(KeyAnswersFile),
		BaseAppDir:  v.GetString(KeyBaseAppDir),
		LangsDir:    v.GetString(KeyLangsDir),
		ConfigFile:  configFile,
		v:           v,
	}, nil
}

// AnswersPath returns the answers file path resolved against Root.
func (s *Settings) AnswersPath() string {
	if filepath.IsAbs(s.AnswersFile) {
		return s.AnswersFile
	}
	return filepath.Join(s.Root, s.AnswersFile)
}

// Get returns a setting by key. Returns empty string if not set.
func (s *Settings) Get(key string) string {
	if s.v == nil {
		return ""
	}
	return s.v.GetString(key)
}

// Keys returns the known setting keys in sorted order.
func Keys() []string {
	keys := []string{KeyAnswersFile, KeyBaseAppDir, KeyLangsDir}
	sort.Strings(keys)
	return keys
}

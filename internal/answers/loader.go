package answers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Well-known answer keys.
const (
	KeyLangs   = "langs"
	KeyBaseApp = "base_app"

	// Keys the template tool records about itself.
	KeyCommit  = "_commit"
	KeySrcPath = "_src_path"
)

// Answers maps a questionnaire option to its value. Selection options hold
// either a single string or a list of strings.
type Answers map[string]any

// Load reads the answers file at path. A missing file is not an error and
// yields an empty mapping; malformed YAML is.
func Load(path string) (Answers, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Answers{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading answers file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes an answers document. path is only used in error messages.
func Parse(data []byte, path string) (Answers, error) {
	var a Answers
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing answers file %s: %w", path, err)
	}
	if a == nil {
		a = Answers{}
	}
	return a, nil
}

// Marshal renders answers back to YAML for display.
func Marshal(a Answers) ([]byte, error) {
	return yaml.Marshal(map[string]any(a))
}

// Selection returns the value of key as an ordered list of strings.
// A lone string becomes a one-element list; a missing key, nil or the empty
// string yields an empty list.
func (a Answers) Selection(key string) []string {
	switch v := a[key].(type) {
	case nil:
		return []string{}
	case string:
		if v == "" {
			return []string{}
		}
		return []string{v}
	case []string:
		return append([]string{}, v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	default:
		return []string{fmt.Sprint(v)}
	}
}

// RequireSelection is Selection that fails with a *ConfigurationError when
// nothing was selected for key.
func (a Answers) RequireSelection(key string) ([]string, error) {
	sel := a.Selection(key)
	if len(sel) == 0 {
		return nil, &ConfigurationError{Key: key}
	}
	return sel, nil
}

// TemplateVersion parses the template revision recorded under _commit.
// It reports false when the key is absent or not a semantic version.
func (a Answers) TemplateVersion() (*semver.Version, bool) {
	raw, ok := a[KeyCommit].(string)
	if !ok || raw == "" {
		return nil, false
	}
	v, err := semver.NewVersion(strings.TrimPrefix(raw, "v"))
	if err != nil {
		return nil, false
	}
	return v, true
}

// SourcePath returns the template location recorded under _src_path.
func (a Answers) SourcePath() string {
	s, _ := a[KeySrcPath].(string)
	return s
}

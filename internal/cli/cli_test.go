package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/agentx-labs/stackhooks/internal/answers"
	"github.com/agentx-labs/stackhooks/internal/deps"
)

// runCLI executes the root command with args against a fresh flag state
// and returns its combined output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	projectDir, answersFile, configFile = ".", "", ""
	skipDeps, keepScaffolding = false, false
	versionShort, versionJSON = false, false

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// emptyPath points PATH at an empty directory so no tool resolves.
func emptyPath(t *testing.T) {
	t.Helper()
	t.Setenv("PATH", t.TempDir())
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{errors.New("boom"), 1},
		{&deps.MissingToolsError{Tools: []string{"ruff"}}, 1},
		{fmt.Errorf("wrapped: %w", &deps.MissingToolsError{}), 1},
		{&answers.ConfigurationError{Key: "langs"}, 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestReportError(t *testing.T) {
	var buf bytes.Buffer
	ReportError(&buf, &deps.MissingToolsError{Tools: []string{"ruff"}})
	if buf.Len() != 0 {
		t.Errorf("missing tools should not be reported twice, got %q", buf.String())
	}

	ReportError(&buf, &answers.ConfigurationError{Key: "langs"})
	if !strings.HasPrefix(buf.String(), "Error: configuration error") {
		t.Errorf("ReportError() = %q", buf.String())
	}
}

func TestCheckDeps_MissingTools(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "langs: xml\n")
	emptyPath(t)

	out, err := runCLI(t, "check-deps", "--dir", dir)
	if !deps.IsMissingTools(err) {
		t.Fatalf("error = %v, want MissingToolsError", err)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}
	if !strings.Contains(out, "  - xmllint") {
		t.Errorf("output missing xmllint:\n%s", out)
	}
}

func TestCheckDeps_NoLanguages(t *testing.T) {
	out, err := runCLI(t, "check-deps", "--dir", t.TempDir())
	if !answers.IsConfigurationError(err) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
	if !strings.Contains(out, "Checking system dependencies..") {
		t.Errorf("output = %q", out)
	}
}

func TestFlatten_UnknownTarget(t *testing.T) {
	if _, err := runCLI(t, "flatten", "templates", "--dir", t.TempDir()); err == nil {
		t.Fatal("expected error for unknown target")
	}
}

func TestFlatten_LangsWithCustomAnswersFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "answers.yaml"), "langs: [js, python]\n")
	writeFile(t, filepath.Join(dir, "langs", "js", "config.txt"), "js")
	writeFile(t, filepath.Join(dir, "langs", "python", "config.txt"), "python")

	out, err := runCLI(t, "flatten", "langs", "--dir", dir, "--answers-file", "answers.yaml")
	if err != nil {
		t.Fatalf("flatten error: %v\n%s", err, out)
	}
	data, _ := os.ReadFile(filepath.Join(dir, "config.txt"))
	if string(data) != "python" {
		t.Errorf("config.txt = %q, want python", data)
	}
}

func TestFlatten_BaseAppFromSettingsDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".stackhooks.yaml"), "base_app_dir: apps\n")
	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "base_app: django\n")
	writeFile(t, filepath.Join(dir, "apps", "django", "manage.py"), "")

	if out, err := runCLI(t, "flatten", "base-app", "-C", dir); err != nil {
		t.Fatalf("flatten error: %v\n%s", err, out)
	}
	if _, err := os.Stat(filepath.Join(dir, "manage.py")); err != nil {
		t.Errorf("manage.py not flattened: %v", err)
	}
}

func TestCleanup_Command(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "hooks", "x.go"), "")

	out, err := runCLI(t, "cleanup", "--dir", dir)
	if err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "hooks")); !os.IsNotExist(err) {
		t.Error("hooks should be removed")
	}
	if !strings.Contains(out, "Cleaned up templates") {
		t.Errorf("missing confirmation for absent path:\n%s", out)
	}
}

func TestRun_Pipeline(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "base_app: fastapi\nlangs: [python]\n")
	writeFile(t, filepath.Join(dir, "base_app", "fastapi", "main.py"), "app")
	writeFile(t, filepath.Join(dir, "base_app", "flask", "app.py"), "app")
	writeFile(t, filepath.Join(dir, "langs", "python", "ruff.toml"), "")
	writeFile(t, filepath.Join(dir, "hooks", "main.go"), "")

	out, err := runCLI(t, "run", "--skip-deps", "--dir", dir)
	if err != nil {
		t.Fatalf("run error: %v\n%s", err, out)
	}
	for _, f := range []string{"main.py", "ruff.toml"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("%s missing after run: %v", f, err)
		}
	}
	for _, p := range []string{"base_app", "langs", "hooks", ".copier-answers.yml"} {
		if _, err := os.Stat(filepath.Join(dir, p)); !os.IsNotExist(err) {
			t.Errorf("%s should be cleaned up", p)
		}
	}
}

func TestRun_StopsOnMissingTools(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "base_app: fastapi\nlangs: python\n")
	writeFile(t, filepath.Join(dir, "base_app", "fastapi", "main.py"), "app")
	emptyPath(t)

	_, err := runCLI(t, "run", "--dir", dir)
	if !deps.IsMissingTools(err) {
		t.Fatalf("error = %v, want MissingToolsError", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "base_app", "fastapi", "main.py")); err != nil {
		t.Errorf("flatten ran after failed dependency check: %v", err)
	}
}

func TestRun_KeepScaffolding(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "base_app: fastapi\nlangs: python\n")
	writeFile(t, filepath.Join(dir, "hooks", "main.go"), "")

	if _, err := runCLI(t, "run", "--skip-deps", "--keep-scaffolding", "--dir", dir); err != nil {
		t.Fatalf("run error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "hooks", "main.go")); err != nil {
		t.Errorf("scaffolding removed despite --keep-scaffolding: %v", err)
	}
}

func TestAnswersShow(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "_commit: v2.1.0\nlangs: [js]\nbase_app: express\n")

	out, err := runCLI(t, "answers", "show", "--dir", dir)
	if err != nil {
		t.Fatalf("answers show error: %v", err)
	}
	for _, want := range []string{"Template version: 2.1.0", "Languages: [js]", "Base app: [express]"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnswersValidate(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "langs: 42\n")

	out, err := runCLI(t, "answers", "validate", "--dir", dir)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(out, "[FAIL]") || !strings.Contains(out, "/langs") {
		t.Errorf("output = %q", out)
	}

	writeFile(t, filepath.Join(dir, ".copier-answers.yml"), "langs: [js]\n")
	out, err = runCLI(t, "answers", "validate", "--dir", dir)
	if err != nil {
		t.Fatalf("validate error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "[ OK ] Valid answers file") {
		t.Errorf("output = %q", out)
	}
}

func TestTools(t *testing.T) {
	emptyPath(t)
	out, err := runCLI(t, "tools", "xml", "cobol")
	if err != nil {
		t.Fatalf("tools error: %v", err)
	}
	if !strings.Contains(out, "[MISS] xmllint not found") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "cobol:\n  (no tools required)") {
		t.Errorf("output = %q", out)
	}
}

func TestConfigGet(t *testing.T) {
	t.Setenv("STACKHOOKS_LANGS_DIR", "languages")
	out, err := runCLI(t, "config", "get", "langs_dir", "--dir", t.TempDir())
	if err != nil {
		t.Fatalf("config get error: %v", err)
	}
	if strings.TrimSpace(out) != "languages" {
		t.Errorf("config get = %q, want languages", out)
	}
}

func TestVersion(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-10-19"
	out, err := runCLI(t, "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}

	out, err = runCLI(t, "version", "--json")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"commit": "abc123"`) {
		t.Errorf("version --json = %q", out)
	}
}

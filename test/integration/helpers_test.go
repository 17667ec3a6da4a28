//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds an isolated generated project and a PATH directory with
// stub executables.
type testEnv struct {
	ProjectDir string
	BinDir     string
}

// setupTestEnv creates the temp directories and points PATH at BinDir so
// dependency checks only see stubs installed by the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ProjectDir: t.TempDir(),
		BinDir:     t.TempDir(),
	}
	t.Setenv("PATH", env.BinDir)
	return env
}

// setupTemplateOutput lays out what the template tool leaves behind before
// the hooks run: stack folders, hook sources, fragments and answers.
func setupTemplateOutput(t *testing.T, projectDir, answersYAML string) {
	t.Helper()

	writeFile(t, filepath.Join(projectDir, ".copier-answers.yml"), answersYAML)
	writeFile(t, filepath.Join(projectDir, "README.md"), "# demo\n")

	// --- Base apps ---
	writeFile(t, filepath.Join(projectDir, "base_app", "fastapi", "main.py"), "from fastapi import FastAPI\n")
	writeFile(t, filepath.Join(projectDir, "base_app", "fastapi", "Makefile"), "run:\n\tuvicorn main:app\n")
	writeFile(t, filepath.Join(projectDir, "base_app", "express", "index.js"), "require('express')\n")
	writeFile(t, filepath.Join(projectDir, "base_app", "express", "Makefile"), "run:\n\tnode index.js\n")

	// --- Languages ---
	writeFile(t, filepath.Join(projectDir, "langs", "js", "eslint.config.js"), "export default [];\n")
	writeFile(t, filepath.Join(projectDir, "langs", "js", "Makefile"), "lint:\n\teslint .\n")
	writeFile(t, filepath.Join(projectDir, "langs", "python", "ruff.toml"), "line-length = 100\n")
	writeFile(t, filepath.Join(projectDir, "langs", "python", "Makefile"), "lint:\n\truff check .\n")

	// --- Template internals ---
	writeFile(t, filepath.Join(projectDir, "hooks", "main.go"), "package main\n")
	writeFile(t, filepath.Join(projectDir, "templates", "ci.yml.jinja"), "on: push\n")
}

// installTools creates executable stubs for each tool in BinDir.
func installTools(t *testing.T, binDir string, tools ...string) {
	t.Helper()
	for _, tool := range tools {
		path := filepath.Join(binDir, tool)
		if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
			t.Fatalf("installing stub %s: %v", tool, err)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be removed", path)
	}
}

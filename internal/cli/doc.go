// Package cli defines the Cobra command tree for the stackhooks CLI. Each
// file registers one top-level command with the root command. Commands
// resolve settings and answers, then delegate to the hook packages
// (deps, flatten, cleanup) for the actual work.
package cli

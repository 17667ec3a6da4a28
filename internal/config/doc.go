// Package config resolves hook settings: the answers file location and the
// names of the per-stack source directories. Values come from built-in
// defaults, an optional project-level .stackhooks.yaml (or --config file),
// and STACKHOOKS_* environment variables, in increasing priority.
package config

// Package flatten merges the per-stack subfolders a template ships (one
// folder per base application, one per language) into the project root.
// Files from stacks selected later replace same-named files from stacks
// selected earlier.
package flatten

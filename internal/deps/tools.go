package deps

import "sort"

// ToolsMapping lists, per language stack, the executables its linters and
// scripts need. Stacks missing from the table require nothing.
var ToolsMapping = map[string][]string{
	"js": {
		"node",
		"npm",
		"eslint",
	},
	"python": {
		"python3",
		"pip",
		"python",
		"ruff",
		"pylint",
	},
	"xml": {
		"xmllint",
	},
}

// RequiredTools returns a copy of the tool list for stack.
func RequiredTools(stack string) []string {
	return append([]string{}, ToolsMapping[stack]...)
}

// Stacks returns the stacks with a tool list, sorted.
func Stacks() []string {
	stacks := make([]string, 0, len(ToolsMapping))
	for s := range ToolsMapping {
		stacks = append(stacks, s)
	}
	sort.Strings(stacks)
	return stacks
}

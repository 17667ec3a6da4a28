// Package deps checks that the developer tools each selected language stack
// relies on (linters, package managers, interpreters) are resolvable on the
// executable search path before the generated project is handed over.
package deps

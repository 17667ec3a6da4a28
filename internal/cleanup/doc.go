// Package cleanup deletes template-only scaffolding (stack source folders,
// hook sources, template fragments and the answers file) once generation
// has finished.
package cleanup

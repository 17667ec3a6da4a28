// Package answers reads the answers file the template tool persists after
// its interactive questionnaire (.copier-answers.yml). It exposes the
// scalar-or-sequence selection helper shared by every hook, the
// ConfigurationError raised when a required selection is empty, and schema
// validation of the answers document.
package answers

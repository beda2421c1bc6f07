// Package askd provides a small HTTP question-answering service that forwards
// a question to a generative-text provider and returns its answer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., gemini/, resty/, http/).
package askd

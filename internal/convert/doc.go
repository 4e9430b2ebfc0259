// Package convert contains the core conversion pipeline: prompt
// construction, the single request to the model provider, output
// sanitization and the controller state machine the UI observes. This
// package serves as the main coordinator between the language table,
// the model providers and the history store.
package convert

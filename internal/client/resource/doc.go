// Package resource holds the per-view request state used by every screen
// that loads remote data.
//
// A Resource moves idle → loading → success|error and back to loading on
// refresh. Each request takes a generation ticket; a response carrying an
// older ticket than the latest one, or arriving after Discard, is dropped.
//
// A Policy decides when a view substitutes its sample dataset: on request
// failure, immediately on mount in development mode, or both. Sample data
// never hides an authentication failure or a rejected request (validation
// errors, client side or from the backend).
package resource

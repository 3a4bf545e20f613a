// Package shared provides cross-cutting helpers used across the codebase.
package shared

import "errors"

// Domain error sentinels. Services return these wrapped with context; the
// dispatcher maps each to its fixed user-facing outcome.
var (
	// ErrNotFound signals an absent category, product or cart line.
	ErrNotFound = errors.New("not found")

	// ErrStaleState signals an action referencing a count or line that has
	// changed since the control was rendered. Never an internal fault:
	// handled as a no-op plus a re-render of authoritative state.
	ErrStaleState = errors.New("stale state")

	// ErrCycleDetected signals a category parent chain that did not
	// terminate within the depth guard. Data integrity fault upstream.
	ErrCycleDetected = errors.New("category cycle detected")

	// ErrEmptyQuestion rejects a blank advisory question after trimming.
	ErrEmptyQuestion = errors.New("empty question")

	// ErrNoActiveSession signals free text arriving without a started
	// consultation to attach it to.
	ErrNoActiveSession = errors.New("no active advisory session")

	// ErrServiceUnavailable wraps failures of external collaborators
	// (advisory completion, catalog feed). Never retried inside the core.
	ErrServiceUnavailable = errors.New("external service unavailable")
)

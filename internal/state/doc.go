// Package state models the request lifecycle of the movie catalog view.
//
// # Overview
//
// A view moves through three mutually exclusive states:
//
//	┌──────────┐  success  ┌──────────────────┐
//	│ Loading  │──────────→│ Loaded{movies}   │
//	│          │           └──────────────────┘
//	│          │  failure  ┌──────────────────┐
//	│          │──────────→│ Failed{message}  │
//	└──────────┘           └──────────────────┘
//
// ViewState is a closed sum type: the unexported viewState method keeps other
// packages from adding variants, and callers switch on the concrete type.
// Because loading and error live in different variants, a view can never be
// loading and failed at the same time.
//
// # Update Semantics
//
// Settle mirrors the poller/store contract used elsewhere in the codebase:
//
//	// Success case: replace the collection
//	Settle(prev, movies, nil)
//	→ Loaded{Collection: movies}
//
//	// Error case: keep old data, record error
//	Settle(prev, nil, err)
//	→ Failed{Message: FetchFailedMessage, Collection: prev.Movies()}
//
// Every settle leaves Loading() false, whichever branch ran.
//
// # Defensive Copying
//
// Collections are cloned on every transition so a state value handed to the
// renderer cannot be changed by a later update.
package state

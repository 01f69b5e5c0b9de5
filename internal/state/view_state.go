package state

import "github.com/five82/marquee/internal/catalog"

// FetchFailedMessage is the only error text ever shown to the user.
const FetchFailedMessage = "Failed to fetch movies. Please check if the backend is running."

// ViewState is the lifecycle of one catalog view. Exactly one of Loading,
// Loaded or Failed holds at any instant.
type ViewState interface {
	// Loading reports whether a fetch is in flight.
	Loading() bool
	// Movies returns the collection to render.
	Movies() []catalog.Movie
	// Err returns the user-facing error message, or "" when there is none.
	Err() string

	viewState()
}

// Loading is the in-flight variant. Previous holds the collection from before
// the fetch; it is never rendered while loading.
type Loading struct {
	Previous []catalog.Movie
}

// Loaded holds the collection from a successful fetch.
type Loaded struct {
	Collection []catalog.Movie
}

// Failed records a failed fetch. Collection is whatever was held before the
// attempt.
type Failed struct {
	Message    string
	Collection []catalog.Movie
}

func (Loading) Loading() bool { return true }
func (Loaded) Loading() bool  { return false }
func (Failed) Loading() bool  { return false }

func (s Loading) Movies() []catalog.Movie { return s.Previous }
func (s Loaded) Movies() []catalog.Movie  { return s.Collection }
func (s Failed) Movies() []catalog.Movie  { return s.Collection }

func (Loading) Err() string  { return "" }
func (Loaded) Err() string   { return "" }
func (s Failed) Err() string { return s.Message }

func (Loading) viewState() {}
func (Loaded) viewState()  {}
func (Failed) viewState()  {}

// Initial is the state a view starts in: loading, empty, no error.
func Initial() ViewState {
	return Begin(nil)
}

// Begin moves any state into Loading, keeping the current collection as
// Previous.
func Begin(prev ViewState) ViewState {
	if prev == nil {
		return Loading{}
	}
	return Loading{Previous: cloneMovies(prev.Movies())}
}

// Settle applies the outcome of a fetch. It never returns a Loading state.
// On success the collection is replaced wholesale; on failure the previous
// collection is kept and the fixed message recorded.
func Settle(prev ViewState, movies []catalog.Movie, err error) ViewState {
	if err != nil {
		var kept []catalog.Movie
		if prev != nil {
			kept = cloneMovies(prev.Movies())
		}
		return Failed{Message: FetchFailedMessage, Collection: kept}
	}
	return Loaded{Collection: cloneMovies(movies)}
}

func cloneMovies(items []catalog.Movie) []catalog.Movie {
	if len(items) == 0 {
		return nil
	}
	dup := make([]catalog.Movie, len(items))
	copy(dup, items)
	return dup
}

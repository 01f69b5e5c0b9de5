// Package ui implements the movie catalog view as a Bubble Tea program.
//
// # Lifecycle
//
// Model wraps a state.ViewState and drives it through one request:
//
//  1. New creates the view in the Loading state
//  2. Init returns the fetch command; Bubble Tea runs it off the event loop
//  3. The command answers with moviesLoadedMsg or moviesFailedMsg
//  4. Update settles the state; the fetch error goes to the log only
//
// Every message carries the id of the view that issued it, and a view ignores
// messages addressed to another instance. Once the program has quit Bubble Tea
// stops delivering messages, so a late response is dropped without touching
// any state.
//
// # Rendering
//
// render is a pure function of the state, theme and layout:
//
//   - Loading: heading and "Loading movies..." only
//   - Failed: heading, error banner, then whatever collection was held
//   - Loaded: heading, then one card per movie
//
// Each card shows the title followed by Year, Genre, Director and Rating, in
// that order, with bold labels. Once the terminal size is known the cards
// scroll in a viewport below the fixed header, so View shows only the cards
// that fit the window. render always lays out the full collection and is
// what tests assert card content and order against.
//
// # Key Bindings
//
//   - j/k, arrows, pgup/pgdown: Scroll
//   - g/G: Top/bottom
//   - c: Toggle compact cards
//   - T: Cycle theme
//   - ?: Toggle help
//   - q or Ctrl+C: Exit
//
// There is no refresh binding; a failed fetch stays failed until
// the program is started again.
package ui

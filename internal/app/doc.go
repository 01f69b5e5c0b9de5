// Package app is the composition root for marquee.
//
// # Overview
//
// Run wires configuration, logging, preferences, the catalog client and the
// UI, then hands control to the Bubble Tea program:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Resolve API URL and log settings once
//	       ├─────> logging.NewLogger()  Open the diagnostic log
//	       ├─────> catalog.NewClient()  HTTP client for /api/movies
//	       ├─────> prefs.Load()         Theme and card density
//	       └─────> ui.Run()             Catalog view (blocks)
//
// The API URL is resolved before the view exists and passed to it through the
// client; nothing re-reads the environment afterwards.
//
// # Error Handling
//
// Fatal errors are returned from Run: unreadable config, an unopenable log
// file, an unparseable API URL, or the terminal program failing to start. A
// failed movie fetch is not fatal; the view shows its error banner and keeps
// running until the user quits.
//
// # Other Entry Points
//
//   - Health: one-shot GET /health against the configured API
//   - Serve: run the demo API from package demoapi
package app

// Package config resolves marquee's startup configuration.
//
// # Resolution Order
//
// Values are layered with viper, later sources winning:
//
//  1. Built-in defaults
//  2. The TOML file at the given path, or ~/.config/marquee/config.toml
//  3. Environment variables
//
// The command line may override the API URL after Load returns.
//
// # Default Values
//
//   - API URL: http://localhost:3001
//   - Log file: ~/.local/state/marquee/marquee.log
//   - Log level: INFO
//
// # Environment
//
//   - MARQUEE_API_URL, falling back to REACT_APP_API_URL
//   - MARQUEE_LOG_FILE
//   - MARQUEE_LOG_LEVEL
//
// # TOML Format
//
//	api_url = "http://movies.internal:3001"
//	log_file = "~/.cache/marquee.log"
//	log_level = "debug"
//
// All fields are optional. Blank values fall back to defaults and tilde
// expansion is applied to log_file.
//
// Load is called once at startup; the returned Config is passed explicitly to
// the components that need it. Nothing here keeps package-level state.
package config

// Package cli provides the interactive coinviewer command-line client.
//
// The REPL stands in for the two screens of the app. The coin list screen
// is opened on start and loads immediately; "show <coin-id>" opens a detail
// screen, replacing the previous one. Every command renders from the
// view-state holders in package viewstate, never from the repositories
// directly, so the output is exactly what a screen bound to those holders
// would display.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli

// Package viewstate holds the observable state behind the two screens of the
// client: the coin list and the coin detail.
//
// Each holder owns a Result and an IsRefreshing flag, both exposed as
// read-only Flows that any number of observers can read or subscribe to.
// Fetches run in their own goroutines; they are never deduplicated or
// cancelled by newer fetches, so whichever completes last wins. A holder lives
// as long as its screen: Close tears down its scope, after which completions
// of still-running fetches are dropped.
//
// Nothing a fetch does, including a panic, propagates to the caller. Every
// failure ends as a Failure carrying the generic error message.
package viewstate

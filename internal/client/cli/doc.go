// Package cli implements the interactive terminal front end of the LMS
// client.
//
// The REPL (see runREPL) reads commands from standard input and dispatches
// them to view methods on App. Each view resolves its route through the
// guard (see router.go): public views render in any session state,
// protected views require an authenticated session, and instructor views
// additionally require the INSTRUCTOR role. While the persisted session is
// still being restored, protected views show a loading hint instead of
// redirecting, so a slow startup never bounces a returning user through
// the login prompt.
//
// Views never inspect server error strings; they map the pipeline's
// sentinel error kinds to terminal messages (see friendly).
//
// Interactive input goes through the helpers in input.go, which expose
// small test seams (readPassword, getSimpleText, getPassword, printlnFn)
// so the flows can be driven from unit tests without a terminal.
package cli

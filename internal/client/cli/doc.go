// Package cli is the terminal front end of the client.
//
// It wires configuration, the session database, the gRPC backend and the
// feature models, then runs a line-oriented REPL. Each screen (login, home,
// verification, announcements) accepts its own commands; type "help" to
// list them.
//
// Store callbacks never touch other stores directly: state changes and
// effects that require a reaction are queued as events and handled on the
// REPL goroutine between commands.
package cli

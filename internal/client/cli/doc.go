// Package cli provides the interactive myFlix command-line client.
//
// It wires configuration, the local session store, the API gateway and the
// services, then runs a REPL. Typical flow: log in once, browse the catalog,
// mark favorites; the session survives restarts until logout.
//
// Key features:
//   - Register / Login / Logout / whoami
//   - Browse movies, a single movie, a director, a genre
//   - Favorites: list, add, remove
//   - Edit or delete the profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or ctx is cancelled. See App and runREPL for details.
package cli

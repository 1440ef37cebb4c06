package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
// It writes to the same writer the App commands use.
var printlnFn = fmt.Fprintln

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	reportError(ctx context.Context, err error)

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Movies(ctx context.Context) error
	Movie(ctx context.Context, title string) error
	Director(ctx context.Context, name string) error
	Genre(ctx context.Context, name string) error

	Favorites(ctx context.Context) error
	AddFavorite(ctx context.Context, movieID string) error
	RemoveFavorite(ctx context.Context, movieID string) error

	EditProfile(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, whoami, help, exit"
	helpLoggedIn  = "Available commands: movies, movie <title>, director <name>, genre <name>, " +
		"favorites, fav <movie id>, unfav <movie id>, profile, delete-account, whoami, logout, help, exit"
)

// needsLogin lists commands that only make sense with a stored session.
var needsLogin = map[string]bool{
	"logout":         true,
	"movies":         true,
	"movie":          true,
	"director":       true,
	"genre":          true,
	"favorites":      true,
	"fav":            true,
	"unfav":          true,
	"profile":        true,
	"delete-account": true,
}

// runREPL starts a simple read–eval–print loop for the myFlix CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that take a name (movie, director,
// genre) join the remaining tokens with single spaces, so titles need no
// quoting. The loop exits on EOF, on ctx cancellation, or when the user
// types "exit" or "quit".
//
// The same reader is handed to the prompts of interactive commands, so the
// REPL never loses buffered input between a command and its prompts.
//
// Prompts, help and usage lines go to w, which is the App's output writer.
//
// Errors returned by command handlers are passed to a.reportError; the loop
// itself never stops on a failed command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(w, fmt.Sprintf("myflix%s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		if needsLogin[cmd] && !a.isLoggedIn(ctx) {
			printlnFn(w, "Please log in first.")
			continue
		}

		run := func(err error) {
			if err != nil {
				a.reportError(ctx, err)
			}
		}

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(w, helpLoggedIn)
			} else {
				printlnFn(w, helpLoggedOut)
			}

		case "register":
			run(a.Register(ctx))

		case "login":
			run(a.Login(ctx))

		case "logout":
			run(a.Logout(ctx))

		case "whoami":
			run(a.WhoAmI(ctx))

		case "movies":
			run(a.Movies(ctx))

		case "movie":
			if arg == "" {
				printlnFn(w, "Usage: movie <title>")
				continue
			}
			run(a.Movie(ctx, arg))

		case "director":
			if arg == "" {
				printlnFn(w, "Usage: director <name>")
				continue
			}
			run(a.Director(ctx, arg))

		case "genre":
			if arg == "" {
				printlnFn(w, "Usage: genre <name>")
				continue
			}
			run(a.Genre(ctx, arg))

		case "favorites":
			run(a.Favorites(ctx))

		case "fav":
			if len(parts) != 2 {
				printlnFn(w, "Usage: fav <movie id>")
				continue
			}
			run(a.AddFavorite(ctx, parts[1]))

		case "unfav":
			if len(parts) != 2 {
				printlnFn(w, "Usage: unfav <movie id>")
				continue
			}
			run(a.RemoveFavorite(ctx, parts[1]))

		case "profile":
			run(a.EditProfile(ctx))

		case "delete-account":
			run(a.DeleteAccount(ctx))

		case "exit", "quit":
			printlnFn(w, "Bye!")
			return

		default:
			printlnFn(w, "Unknown command:", cmd)
		}
	}
}

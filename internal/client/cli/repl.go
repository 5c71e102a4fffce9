package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Reload(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Section(ctx context.Context, name string) error
	Org(ctx context.Context, name string) error
	Fav(ctx context.Context, id string) error
	Favs(ctx context.Context) error
	View(ctx context.Context, id string) error
	Publish(ctx context.Context) error
	Draft(ctx context.Context) error
	Mine(ctx context.Context) error
	Profile(ctx context.Context) error
	Metrics(ctx context.Context) error
}

// runREPL starts the read–eval–print loop of the EditaisBR CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always available:
//	  - help               : show available commands
//	  - list | l           : show the (filtered) notice listing
//	  - reload             : refetch and re-merge the listing
//	  - search [term]      : set/clear the free-text filter
//	  - section [name]     : set/clear the section filter
//	  - org [name]         : set/clear the organization filter
//	  - fav <id>           : toggle a favorite
//	  - favs               : show favorite notices
//	  - view <id>          : open a notice (counts a view)
//	  - exit | quit        : leave the program
//
//	Not logged in:
//	  - login, register
//
//	Logged in:
//	  - publish, draft, mine, profile, metrics, logout
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("editais %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Comandos: (l)ist, reload, search [termo], section [nome], org [nome], fav <id>, favs, view <id>, exit")
			if a.isLoggedIn() {
				printlnFn("Sessão: publish, draft, mine, profile, metrics, logout")
			} else {
				printlnFn("Sessão: login, register")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "section":
			_ = a.Section(ctx, strings.Join(args, " "))

		case "org":
			_ = a.Org(ctx, strings.Join(args, " "))

		case "fav":
			if len(args) == 0 {
				printlnFn("Uso: fav <id>")
				continue
			}
			_ = a.Fav(ctx, args[0])

		case "favs":
			_ = a.Favs(ctx)

		case "view":
			if len(args) == 0 {
				printlnFn("Uso: view <id>")
				continue
			}
			_ = a.View(ctx, args[0])

		case "publish":
			_ = a.Publish(ctx)

		case "draft":
			_ = a.Draft(ctx)

		case "mine":
			_ = a.Mine(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "metrics":
			_ = a.Metrics(ctx)

		case "exit", "quit":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", cmd)
		}
	}
}

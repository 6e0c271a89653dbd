package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context)
	Logout(ctx context.Context)
	Dashboard(ctx context.Context)
	Analytics(ctx context.Context)
	Bookings(ctx context.Context, args []string)
	Vehicles(ctx context.Context, args []string)
	Users(ctx context.Context, args []string)
}

// runREPL starts a read–eval–print loop for the admin console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - dashboard         — show the stats snapshot
//	  - analytics         — show booking/revenue trends
//	  - bookings ...      — list bookings, set a booking's status
//	  - vehicles ...      — page/filter/add/edit/remove vehicles
//	  - users ...         — list/edit/block/remove accounts
//	  - logout            — log out
//	  - exit | quit       — leave the program
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rf %s> ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: dashboard, analytics, bookings, vehicles, users, logout, exit")
				printlnFn("  bookings [list|setstatus]")
				printlnFn("  vehicles [list|page|filter|clearfilter|add|edit|remove|setimage]")
				printlnFn("  users    [list|edit|block|unblock|remove]")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			a.Login(ctx)

		case "logout":
			a.Logout(ctx)

		case "dashboard":
			a.Dashboard(ctx)

		case "analytics":
			a.Analytics(ctx)

		case "b", "bookings":
			a.Bookings(ctx, args)

		case "v", "vehicles":
			a.Vehicles(ctx, args)

		case "u", "users":
			a.Users(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

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
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	hasOwner() bool
	SwitchUser(ctx context.Context) error
	List(ctx context.Context) error
	Reload(ctx context.Context) error
	Delete(ctx context.Context) error
	Edit(ctx context.Context) error
	Passwd(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the owner panel.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Without an owner identity:
//	  - help           — show available commands
//	  - user           — choose an owner email
//	  - exit | quit    — leave the program
//
//	With an owner identity:
//	  - help           — show available commands
//	  - user           — switch to another owner email
//	  - (l)ist         — render the panel
//	  - reload         — re-fetch the listings
//	  - delete         — delete a listing (asks for confirmation)
//	  - edit           — hand a listing to the editor flow
//	  - passwd         — change the account password
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are ignored here; handlers notify or
// log their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rodchao> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.hasOwner() {
				printlnFn("Available commands: user, (l)ist, reload, delete, edit, passwd, exit")
			} else {
				printlnFn("Available commands: user, exit")
			}

		case "user":
			_ = a.SwitchUser(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "reload":
			_ = a.Reload(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "passwd":
			_ = a.Passwd(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

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
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Write(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	List(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Undo(ctx context.Context) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Theme(ctx context.Context) error
	Prompt(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the journal CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - signup         — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - write [date]   — write or replace the entry for a day (default today)
//	  - show [date]    — show one day's entry
//	  - list           — list all entries, newest first
//	  - search <text>  — find entries containing text
//	  - stats          — journaling statistics
//	  - delete <date>  — delete one day's entry
//	  - undo           — restore the last deleted entry
//	  - export [path]  — write a backup file
//	  - import <path>  — merge a backup file
//	  - theme          — change theme and color scheme
//	  - prompt         — print a writing prompt
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Errors returned by command handlers are reported here and the loop keeps
// going; a failed command never terminates the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("365 %s> ", statusFn()))
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

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: write [date], show [date], list, search <text>, stats, delete <date>, undo, export [path], import <path>, theme, prompt, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, exit")
			}

		case "signup":
			err = a.SignUp(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "w", "write":
			err = a.Write(ctx, args)

		case "show":
			err = a.Show(ctx, args)

		case "l", "list":
			err = a.List(ctx)

		case "search":
			err = a.Search(ctx, args)

		case "stats":
			err = a.Stats(ctx)

		case "delete":
			err = a.Delete(ctx, args)

		case "undo":
			err = a.Undo(ctx)

		case "export":
			err = a.Export(ctx, args)

		case "import":
			err = a.Import(ctx, args)

		case "theme":
			err = a.Theme(ctx)

		case "prompt":
			err = a.Prompt(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

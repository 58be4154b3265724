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
	List(ctx context.Context) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context, coinID string) error
	Back(ctx context.Context) error
}

const helpText = "Available commands: (l)ist, (r)efresh, show <coin-id>, back, help, exit"

// runREPL reads commands line by line and dispatches them to a.
//
//	list | l         show the coin list
//	refresh | r      reload the coin list
//	show <coin-id>   open the detail screen of a coin, e.g. show btc-bitcoin
//	back             close the detail screen
//	help             show available commands
//	exit | quit      leave the program
//
// The loop exits on scanner EOF, on "exit"/"quit" or when ctx is cancelled.
// Errors returned by handlers are ignored here; handlers report to the user
// themselves. promptFn may return "" to suppress the prompt.
func runREPL(ctx context.Context, a execIface, promptFn func() string, scanner *bufio.Scanner) {
	done := make(chan struct{})
	defer close(done)

	lines := make(chan string)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		if p := promptFn(); p != "" {
			printlnFn(p)
		}

		var line string
		select {
		case <-ctx.Done():
			printlnFn("Bye!")
			return
		case l, ok := <-lines:
			if !ok {
				return
			}
			line = l
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "l", "list":
			_ = a.List(ctx)

		case "r", "refresh":
			_ = a.Refresh(ctx)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <coin-id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "back":
			_ = a.Back(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
	"github.com/avolkovs/bookmarket-cli/internal/client/session"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb. Auth and Role drive the gate: a command with
// Auth false runs for anybody, the rest go through session.Decide with
// the declared role requirement.
type command struct {
	Name string
	Help string
	Auth bool
	Role models.Role
	Run  func(ctx context.Context, args []string) error
}

// runREPL starts a read–eval–print loop over the given command table.
//
// It reads a line from the provided scanner, parses the first token as the
// command name, gates the command against the current session snapshot,
// and dispatches. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Gating outcomes map onto the guard's decisions:
//   - pending: the session is still being restored, ask the user to retry
//   - redirect to login: the command needs authentication
//   - redirect home: the user lacks the required role
//   - render: run the command
//
// Handler errors are printed, never fatal; the loop stays up so a typo or
// a server hiccup costs a single command, not the whole session.
func runREPL(ctx context.Context, cmds []command, snapFn func() session.Snapshot, statusFn func() string, scanner *bufio.Scanner) {
	index := make(map[string]command, len(cmds))
	for _, c := range cmds {
		index[c.Name] = c
	}

	for {
		printlnFn(fmt.Sprintf("bookmarket %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			printHelp(cmds, snapFn())
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		c, ok := index[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}

		if c.Auth {
			switch d := session.Decide(snapFn(), c.Role); {
			case d.Action == session.ActionPending:
				printlnFn("Session is still being restored, try again")
				continue
			case d.Action == session.ActionRedirect && d.Target == session.PathLogin:
				printlnFn("Please log in first")
				continue
			case d.Action == session.ActionRedirect:
				printlnFn("You do not have access to this command")
				continue
			}
		}

		if err := c.Run(ctx, args); err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

// printHelp lists only the commands the current session may run, so an
// anonymous user is not teased with admin verbs.
func printHelp(cmds []command, snap session.Snapshot) {
	var names []string
	for _, c := range cmds {
		if c.Auth {
			if d := session.Decide(snap, c.Role); d.Action != session.ActionRender {
				continue
			}
		}
		names = append(names, c.Name)
	}
	printlnFn("Available commands:", strings.Join(names, ", ")+", help, exit")
}

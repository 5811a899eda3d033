package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt decoration: username and role when logged
// in, the bare phase otherwise.
func (a *App) getStatus() string {
	snap := a.session.Snapshot()
	if snap.User != nil {
		return fmt.Sprintf("(%s %s)", snap.User.Username, snap.User.Role)
	}
	return fmt.Sprintf("(%s)", snap.Phase)
}

// Root restores the persisted session and hands control to the REPL.
// It blocks until the user exits.
func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to bookmarket CLI (type 'help' for commands)")

	a.session.Bootstrap(ctx)
	if snap := a.session.Snapshot(); snap.User != nil {
		printlnFn(fmt.Sprintf("Welcome back, %s!", snap.User.Username))
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a.commands(), a.session.Snapshot, a.getStatus, scanner)
}

package cli

import (
	"context"
	"fmt"
	"os"
)

// ListTickets prints the user's support tickets with any admin replies.
func (a *App) ListTickets(ctx context.Context, _ []string) error {
	tickets, err := a.support.List(ctx)
	if err != nil {
		return err
	}
	if len(tickets) == 0 {
		printlnFn("No tickets")
		return nil
	}
	for _, t := range tickets {
		state := "open"
		if t.IsResolved {
			state = "resolved"
		}
		printlnFn(fmt.Sprintf("#%d [%s] %s: %s", t.ID, state, t.Subject, t.Message))
		if t.AdminReply != nil {
			printlnFn("  reply:", *t.AdminReply)
		}
	}
	return nil
}

// OpenTicket collects a subject and message and opens a support ticket.
func (a *App) OpenTicket(ctx context.Context, _ []string) error {
	subject, err := getSimpleText(a.reader, "Enter subject (technical/payment/report/other)", os.Stdout)
	if err != nil {
		return err
	}
	message, err := GetMultiline(a.reader, "Describe the problem:", os.Stdout)
	if err != nil {
		return err
	}

	t, err := a.support.Open(ctx, subject, message)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Ticket #%d opened", t.ID))
	return nil
}

package cli

import (
	"context"
	"fmt"
)

// Notifications prints the user's notifications, unread first marker.
func (a *App) Notifications(ctx context.Context, _ []string) error {
	ns, err := a.notifications.List(ctx)
	if err != nil {
		return err
	}
	if len(ns) == 0 {
		printlnFn("No notifications")
		return nil
	}
	for _, n := range ns {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s #%d %s (%s)", marker, n.ID, n.Message, n.CreatedAt.Format("2006-01-02 15:04")))
	}
	return nil
}

// MarkNotificationRead marks one notification as read.
func (a *App) MarkNotificationRead(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter notification id")
	if err != nil {
		return err
	}

	if err := a.notifications.MarkRead(ctx, id); err != nil {
		return err
	}
	printlnFn("Marked as read")
	return nil
}

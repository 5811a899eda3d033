package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// Users lists accounts, optionally filtered by a search string.
func (a *App) Users(ctx context.Context, args []string) error {
	users, err := a.admin.Users(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, u := range users {
		staff := ""
		if u.IsStaff {
			staff = " staff"
		}
		printlnFn(fmt.Sprintf("#%d %s <%s> %s%s", u.ID, u.Username, u.Email, u.Role, staff))
	}
	return nil
}

// SetRole changes a user's role: setrole <user id> <buyer|seller|admin>.
func (a *App) SetRole(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter user id")
	if err != nil {
		return err
	}

	var raw string
	if len(args) > 1 {
		raw = args[1]
	} else {
		raw, err = getSimpleText(a.reader, "Enter role (buyer/seller/admin)", os.Stdout)
		if err != nil {
			return err
		}
	}
	role, ok := models.ParseRole(raw)
	if !ok {
		return fmt.Errorf("unknown role %q", raw)
	}

	if err := a.admin.SetRole(ctx, id, role); err != nil {
		return err
	}
	printlnFn("Role updated")
	return nil
}

// Approve publishes a pending listing.
func (a *App) Approve(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter book id")
	if err != nil {
		return err
	}
	if err := a.admin.ApproveBook(ctx, id); err != nil {
		return err
	}
	printlnFn("Listing approved")
	return nil
}

// Reject declines a pending listing.
func (a *App) Reject(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter book id")
	if err != nil {
		return err
	}
	if err := a.admin.RejectBook(ctx, id); err != nil {
		return err
	}
	printlnFn("Listing rejected")
	return nil
}

// AddCategory creates a catalog category: addcat <name>.
func (a *App) AddCategory(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		var err error
		name, err = getSimpleText(a.reader, "Enter category name", os.Stdout)
		if err != nil {
			return err
		}
	}

	c, err := a.admin.AddCategory(ctx, name)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Category #%d created", c.ID))
	return nil
}

// RenameCategory renames a category: renamecat <id> <name>.
func (a *App) RenameCategory(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter category id")
	if err != nil {
		return err
	}

	name := ""
	if len(args) > 1 {
		name = strings.Join(args[1:], " ")
	} else {
		name, err = getSimpleText(a.reader, "Enter new name", os.Stdout)
		if err != nil {
			return err
		}
	}

	if _, err := a.admin.RenameCategory(ctx, id, name); err != nil {
		return err
	}
	printlnFn("Category renamed")
	return nil
}

// RemoveCategory deletes a category.
func (a *App) RemoveCategory(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter category id")
	if err != nil {
		return err
	}
	if err := a.admin.RemoveCategory(ctx, id); err != nil {
		return err
	}
	printlnFn("Category removed")
	return nil
}

// ReplyTicket answers a support ticket and resolves it.
func (a *App) ReplyTicket(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter ticket id")
	if err != nil {
		return err
	}
	reply, err := GetMultiline(a.reader, "Enter reply:", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.admin.ReplyTicket(ctx, id, reply); err != nil {
		return err
	}
	printlnFn("Reply sent")
	return nil
}

// Report prints the admin dashboard summary.
func (a *App) Report(ctx context.Context, _ []string) error {
	r, err := a.admin.Report(ctx)
	if err != nil {
		return err
	}
	printlnFn("Active users:", r.ActiveUsers)
	printlnFn("Total books:", r.TotalBooks)
	printlnFn(fmt.Sprintf("Approved: %d, pending: %d", r.Breakdown.Approved, r.Breakdown.Pending))
	return nil
}

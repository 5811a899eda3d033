package cli

import (
	"context"
	"fmt"
	"os"
)

// ShowProfile prints the full profile of the logged-in user.
func (a *App) ShowProfile(ctx context.Context, _ []string) error {
	u := a.session.Snapshot().User
	printlnFn("Username:", u.Username)
	printlnFn("Email:", u.Email)
	printlnFn("Phone:", u.PhoneNumber)
	printlnFn("Name:", u.FirstName, u.LastName)
	printlnFn("Role:", string(u.Role))
	return nil
}

// EditProfile prompts for new contact fields and sends a partial update.
// Empty answers leave a field unchanged. Role cannot be edited here.
func (a *App) EditProfile(ctx context.Context, _ []string) error {
	partial := map[string]any{}

	for _, f := range []struct{ key, prompt string }{
		{"email", "New email (empty to keep)"},
		{"phone_number", "New phone number (empty to keep)"},
		{"first_name", "New first name (empty to keep)"},
		{"last_name", "New last name (empty to keep)"},
	} {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		if v != "" {
			partial[f.key] = v
		}
	}

	if len(partial) == 0 {
		printlnFn("Nothing to change")
		return nil
	}

	if err := a.session.UpdateProfile(ctx, partial); err != nil {
		return err
	}
	printlnFn("Profile updated")
	return nil
}

// History shows the user's purchases and sales.
func (a *App) History(ctx context.Context, _ []string) error {
	h, err := a.orders.History(ctx)
	if err != nil {
		return err
	}

	printlnFn("Purchases:")
	for _, p := range h.Purchases {
		printlnFn(fmt.Sprintf("  #%d %q for %s on %s", p.ID, p.BookTitle, p.Price, p.CreatedAt.Format("2006-01-02")))
	}
	printlnFn("Sales:")
	for _, s := range h.Sales {
		printlnFn(fmt.Sprintf("  #%d %q for %s on %s", s.ID, s.BookTitle, s.Price, s.CreatedAt.Format("2006-01-02")))
	}
	return nil
}

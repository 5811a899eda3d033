package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// MyBooks lists the seller's own inventory, including unapproved and
// sold listings.
func (a *App) MyBooks(ctx context.Context, _ []string) error {
	books, err := a.inventory.MyBooks(ctx)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		printlnFn("No listings yet")
		return nil
	}
	for _, b := range books {
		approved := "pending approval"
		if b.IsApproved {
			approved = "approved"
		}
		printlnFn(fmt.Sprintf("%s | %s | %s", formatBook(b), b.Status, approved))
	}
	return nil
}

// promptDraft collects the writable listing fields.
func (a *App) promptDraft() (models.BookDraft, error) {
	var zero models.BookDraft

	title, err := getSimpleText(a.reader, "Enter title", os.Stdout)
	if err != nil {
		return zero, err
	}
	author, err := getSimpleText(a.reader, "Enter author", os.Stdout)
	if err != nil {
		return zero, err
	}
	price, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return zero, err
	}
	condition, err := getSimpleText(a.reader, "Enter condition (new/used)", os.Stdout)
	if err != nil {
		return zero, err
	}
	category, err := getSimpleText(a.reader, "Enter category id (empty for none)", os.Stdout)
	if err != nil {
		return zero, err
	}
	description, err := GetMultiline(a.reader, "Enter description:", os.Stdout)
	if err != nil {
		return zero, err
	}

	draft := models.BookDraft{
		Title:       title,
		Author:      author,
		Price:       price,
		Condition:   condition,
		Description: description,
	}
	if category != "" {
		id, err := strconv.ParseInt(category, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("not a numeric category id: %q", category)
		}
		draft.Category = &id
	}
	return draft, nil
}

// Sell collects listing fields and submits a new listing for moderation.
func (a *App) Sell(ctx context.Context, _ []string) error {
	draft, err := a.promptDraft()
	if err != nil {
		return err
	}

	b, err := a.inventory.Add(ctx, draft)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Listing #%d submitted, status %s", b.ID, b.Status))
	return nil
}

// EditBook re-collects listing fields and updates an existing listing.
// The edited listing goes back through moderation.
func (a *App) EditBook(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter book id")
	if err != nil {
		return err
	}

	draft, err := a.promptDraft()
	if err != nil {
		return err
	}

	b, err := a.inventory.Update(ctx, id, draft)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Listing #%d updated, status %s", b.ID, b.Status))
	return nil
}

// RemoveBook deletes one of the seller's listings.
func (a *App) RemoveBook(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter book id")
	if err != nil {
		return err
	}

	if err := a.inventory.Remove(ctx, id); err != nil {
		return err
	}
	printlnFn("Listing removed")
	return nil
}

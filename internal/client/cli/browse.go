package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

func formatBook(b models.Book) string {
	cat := b.CategoryName
	if cat == "" {
		cat = "-"
	}
	return fmt.Sprintf("#%d %q by %s | %s | %s | %s | seller: %s",
		b.ID, b.Title, b.Author, cat, b.Price, b.Condition, b.SellerName)
}

// Browse lists approved catalog books. Any arguments are joined into a
// search query over title and author.
func (a *App) Browse(ctx context.Context, args []string) error {
	filter := models.BookFilter{Search: strings.Join(args, " ")}

	books, err := a.catalog.Browse(ctx, filter)
	if err != nil {
		return err
	}
	if len(books) == 0 {
		printlnFn("No books found")
		return nil
	}
	for _, b := range books {
		printlnFn(formatBook(b))
	}
	return nil
}

// ShowBook displays a single listing in full.
func (a *App) ShowBook(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter book id")
	if err != nil {
		return err
	}

	b, err := a.catalog.Get(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(formatBook(*b))
	if b.Description != "" {
		printlnFn(b.Description)
	}
	printlnFn("Status:", b.Status)
	if b.SellerContact != "" {
		printlnFn("Contact:", b.SellerContact)
	}
	return nil
}

// Categories lists catalog categories.
func (a *App) Categories(ctx context.Context, _ []string) error {
	cats, err := a.catalog.Categories(ctx)
	if err != nil {
		return err
	}
	for _, c := range cats {
		printlnFn(fmt.Sprintf("#%d %s", c.ID, c.Name))
	}
	return nil
}

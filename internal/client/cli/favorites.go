package cli

import (
	"context"
	"fmt"
)

// ListFavorites prints the user's saved books.
func (a *App) ListFavorites(ctx context.Context, _ []string) error {
	favs, err := a.favorites.List(ctx)
	if err != nil {
		return err
	}
	if len(favs) == 0 {
		printlnFn("No favorites yet")
		return nil
	}
	for _, f := range favs {
		printlnFn(fmt.Sprintf("#%d %s", f.ID, formatBook(f.BookDetails)))
	}
	return nil
}

// AddFavorite saves a book.
func (a *App) AddFavorite(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter book id")
	if err != nil {
		return err
	}

	f, err := a.favorites.Add(ctx, id)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("Saved as favorite #%d", f.ID))
	return nil
}

// RemoveFavorite removes a saved book by favorite id.
func (a *App) RemoveFavorite(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter favorite id")
	if err != nil {
		return err
	}

	if err := a.favorites.Remove(ctx, id); err != nil {
		return err
	}
	printlnFn("Removed")
	return nil
}

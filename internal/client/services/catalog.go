// Package services contains the application services the CLI talks to:
// one per API resource family, each a thin layer over the remote client
// that owns input validation and any client-side shaping of results.
package services

import (
	"context"
	"errors"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

var ErrBadInput = errors.New("invalid input")

// CatalogService is the public catalog: browsing, searching, categories.
type CatalogService interface {
	Browse(ctx context.Context, f models.BookFilter) ([]models.Book, error)
	Get(ctx context.Context, id int64) (*models.Book, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type catalogService struct {
	client api.Client
}

func NewCatalogService(client api.Client) CatalogService {
	return &catalogService{client: client}
}

// orderings the server accepts; anything else is rejected locally so a
// typo doesn't turn into a server error page.
var validOrderings = map[string]struct{}{
	"price": {}, "-price": {}, "title": {}, "-title": {},
}

func (s *catalogService) Browse(ctx context.Context, f models.BookFilter) ([]models.Book, error) {
	if f.Ordering != "" {
		if _, ok := validOrderings[f.Ordering]; !ok {
			return nil, ErrBadInput
		}
	}
	page, err := s.client.ListBooks(ctx, f)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *catalogService) Get(ctx context.Context, id int64) (*models.Book, error) {
	return s.client.GetBook(ctx, id)
}

func (s *catalogService) Categories(ctx context.Context) ([]models.Category, error) {
	page, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

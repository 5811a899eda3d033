package services

import (
	"context"
	"fmt"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// InventoryService is the seller's side of the catalog. New and edited
// listings always come back in pending status: the server re-queues them
// for moderation regardless of what the seller sends.
type InventoryService interface {
	MyBooks(ctx context.Context) ([]models.Book, error)
	Add(ctx context.Context, d models.BookDraft) (*models.Book, error)
	Update(ctx context.Context, id int64, d models.BookDraft) (*models.Book, error)
	Remove(ctx context.Context, id int64) error
}

type inventoryService struct {
	client api.Client
}

func NewInventoryService(client api.Client) InventoryService {
	return &inventoryService{client: client}
}

func (s *inventoryService) MyBooks(ctx context.Context) ([]models.Book, error) {
	page, err := s.client.MyInventory(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func validateDraft(d models.BookDraft) error {
	if d.Title == "" || d.Author == "" || d.Price == "" {
		return fmt.Errorf("%w: title, author and price are required", ErrBadInput)
	}
	if d.Condition != models.ConditionNew && d.Condition != models.ConditionUsed {
		return fmt.Errorf("%w: condition must be %q or %q",
			ErrBadInput, models.ConditionNew, models.ConditionUsed)
	}
	return nil
}

func (s *inventoryService) Add(ctx context.Context, d models.BookDraft) (*models.Book, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}
	return s.client.AddBook(ctx, d)
}

func (s *inventoryService) Update(ctx context.Context, id int64, d models.BookDraft) (*models.Book, error) {
	if err := validateDraft(d); err != nil {
		return nil, err
	}
	return s.client.UpdateBook(ctx, id, d)
}

func (s *inventoryService) Remove(ctx context.Context, id int64) error {
	return s.client.DeleteBook(ctx, id)
}

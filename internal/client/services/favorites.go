package services

import (
	"context"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// FavoriteService manages the user's saved listings. Adding a listing
// twice surfaces the server's uniqueness validation error unchanged.
type FavoriteService interface {
	List(ctx context.Context) ([]models.Favorite, error)
	Add(ctx context.Context, bookID int64) (*models.Favorite, error)
	Remove(ctx context.Context, favoriteID int64) error
}

type favoriteService struct {
	client api.Client
}

func NewFavoriteService(client api.Client) FavoriteService {
	return &favoriteService{client: client}
}

func (s *favoriteService) List(ctx context.Context) ([]models.Favorite, error) {
	page, err := s.client.ListFavorites(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *favoriteService) Add(ctx context.Context, bookID int64) (*models.Favorite, error) {
	return s.client.AddFavorite(ctx, bookID)
}

func (s *favoriteService) Remove(ctx context.Context, favoriteID int64) error {
	return s.client.RemoveFavorite(ctx, favoriteID)
}

package services

import (
	"context"
	"fmt"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// AdminService is the moderation surface: user management, listing
// approval, category maintenance, ticket replies and the dashboard
// report. The server enforces the admin requirement on every endpoint;
// the CLI additionally gates these commands behind the route guard.
type AdminService interface {
	Users(ctx context.Context, search string) ([]models.UserProfile, error)
	SetRole(ctx context.Context, userID int64, role models.Role) error
	ApproveBook(ctx context.Context, bookID int64) error
	RejectBook(ctx context.Context, bookID int64) error
	AddCategory(ctx context.Context, name string) (*models.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error)
	RemoveCategory(ctx context.Context, id int64) error
	ReplyTicket(ctx context.Context, ticketID int64, reply string) error
	Report(ctx context.Context) (*models.Report, error)
}

type adminService struct {
	client api.Client
}

func NewAdminService(client api.Client) AdminService {
	return &adminService{client: client}
}

func (s *adminService) Users(ctx context.Context, search string) ([]models.UserProfile, error) {
	page, err := s.client.ListUsers(ctx, search)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *adminService) SetRole(ctx context.Context, userID int64, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: unknown role %q", ErrBadInput, role)
	}
	return s.client.UpdateUserRole(ctx, userID, role)
}

func (s *adminService) ApproveBook(ctx context.Context, bookID int64) error {
	return s.client.ApproveBook(ctx, bookID)
}

func (s *adminService) RejectBook(ctx context.Context, bookID int64) error {
	return s.client.RejectBook(ctx, bookID)
}

func (s *adminService) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrBadInput)
	}
	return s.client.CreateCategory(ctx, name)
}

func (s *adminService) RenameCategory(ctx context.Context, id int64, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrBadInput)
	}
	return s.client.UpdateCategory(ctx, id, name)
}

func (s *adminService) RemoveCategory(ctx context.Context, id int64) error {
	return s.client.DeleteCategory(ctx, id)
}

func (s *adminService) ReplyTicket(ctx context.Context, ticketID int64, reply string) error {
	if reply == "" {
		return fmt.Errorf("%w: reply text is required", ErrBadInput)
	}
	return s.client.ReplyTicket(ctx, ticketID, reply)
}

func (s *adminService) Report(ctx context.Context) (*models.Report, error) {
	return s.client.AdminReport(ctx)
}

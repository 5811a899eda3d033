package services

import (
	"context"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// NotificationService lists the user's notifications and marks them read.
type NotificationService interface {
	List(ctx context.Context) ([]models.Notification, error)
	Unread(ctx context.Context) ([]models.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type notificationService struct {
	client api.Client
}

func NewNotificationService(client api.Client) NotificationService {
	return &notificationService{client: client}
}

func (s *notificationService) List(ctx context.Context) ([]models.Notification, error) {
	page, err := s.client.ListNotifications(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *notificationService) Unread(ctx context.Context) ([]models.Notification, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	unread := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) error {
	return s.client.MarkNotificationRead(ctx, id)
}

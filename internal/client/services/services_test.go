package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// stubClient implements the slices of api.Client these tests exercise;
// the embedded nil interface panics on anything they should never touch.
type stubClient struct {
	api.Client

	books      models.Page[models.Book]
	booksErr   error
	lastFilter models.BookFilter

	inventory models.Page[models.Book]
	addedBook *models.BookDraft

	notifications models.Page[models.Notification]

	createdTicket *models.SupportTicket
	lastSubject   string

	lastRole   models.Role
	lastUserID int64
}

func (c *stubClient) ListBooks(_ context.Context, f models.BookFilter) (models.Page[models.Book], error) {
	c.lastFilter = f
	return c.books, c.booksErr
}

func (c *stubClient) MyInventory(_ context.Context) (models.Page[models.Book], error) {
	return c.inventory, nil
}

func (c *stubClient) AddBook(_ context.Context, d models.BookDraft) (*models.Book, error) {
	c.addedBook = &d
	return &models.Book{ID: 7, Title: d.Title, Status: models.StatusPending}, nil
}

func (c *stubClient) ListNotifications(_ context.Context) (models.Page[models.Notification], error) {
	return c.notifications, nil
}

func (c *stubClient) CreateTicket(_ context.Context, subject, message string) (*models.SupportTicket, error) {
	c.lastSubject = subject
	t := &models.SupportTicket{ID: 1, Subject: subject, Message: message}
	c.createdTicket = t
	return t, nil
}

func (c *stubClient) UpdateUserRole(_ context.Context, userID int64, role models.Role) error {
	c.lastUserID = userID
	c.lastRole = role
	return nil
}

func TestCatalogBrowse(t *testing.T) {
	stub := &stubClient{books: models.Page[models.Book]{
		Count:   2,
		Results: []models.Book{{ID: 1}, {ID: 2}},
	}}
	svc := NewCatalogService(stub)

	books, err := svc.Browse(context.Background(), models.BookFilter{Search: "tolstoy", Ordering: "-price"})
	require.NoError(t, err)
	require.Len(t, books, 2)
	require.Equal(t, "tolstoy", stub.lastFilter.Search)
}

func TestCatalogBrowseRejectsUnknownOrdering(t *testing.T) {
	svc := NewCatalogService(&stubClient{})

	_, err := svc.Browse(context.Background(), models.BookFilter{Ordering: "created_at"})
	require.ErrorIs(t, err, ErrBadInput)
}

func TestInventoryAddValidatesDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft models.BookDraft
	}{
		{"missing title", models.BookDraft{Author: "a", Price: "5.00", Condition: models.ConditionUsed}},
		{"missing price", models.BookDraft{Title: "t", Author: "a", Condition: models.ConditionUsed}},
		{"bad condition", models.BookDraft{Title: "t", Author: "a", Price: "5.00", Condition: "mint"}},
	}

	svc := NewInventoryService(&stubClient{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(context.Background(), tt.draft)
			require.ErrorIs(t, err, ErrBadInput)
		})
	}
}

func TestInventoryAddForwardsValidDraft(t *testing.T) {
	stub := &stubClient{}
	svc := NewInventoryService(stub)

	draft := models.BookDraft{
		Title:     "War and Peace",
		Author:    "Tolstoy",
		Price:     "12.50",
		Condition: models.ConditionUsed,
	}
	book, err := svc.Add(context.Background(), draft)
	require.NoError(t, err)
	require.Equal(t, models.StatusPending, book.Status)
	require.Equal(t, draft, *stub.addedBook)
}

func TestNotificationsUnreadFilters(t *testing.T) {
	stub := &stubClient{notifications: models.Page[models.Notification]{
		Results: []models.Notification{
			{ID: 1, IsRead: true},
			{ID: 2, IsRead: false},
			{ID: 3, IsRead: false},
		},
	}}
	svc := NewNotificationService(stub)

	unread, err := svc.Unread(context.Background())
	require.NoError(t, err)
	require.Len(t, unread, 2)
	require.Equal(t, int64(2), unread[0].ID)
}

func TestSupportOpenValidatesSubject(t *testing.T) {
	svc := NewSupportService(&stubClient{})

	_, err := svc.Open(context.Background(), "billing", "help")
	require.ErrorIs(t, err, ErrBadInput)

	_, err = svc.Open(context.Background(), models.TicketPayment, "")
	require.ErrorIs(t, err, ErrBadInput)
}

func TestSupportOpenForwardsTicket(t *testing.T) {
	stub := &stubClient{}
	svc := NewSupportService(stub)

	ticket, err := svc.Open(context.Background(), models.TicketTechnical, "cannot log in")
	require.NoError(t, err)
	require.Equal(t, models.TicketTechnical, ticket.Subject)
	require.Equal(t, models.TicketTechnical, stub.lastSubject)
}

func TestAdminSetRole(t *testing.T) {
	stub := &stubClient{}
	svc := NewAdminService(stub)

	require.NoError(t, svc.SetRole(context.Background(), 42, models.RoleSeller))
	require.Equal(t, int64(42), stub.lastUserID)
	require.Equal(t, models.RoleSeller, stub.lastRole)

	err := svc.SetRole(context.Background(), 42, models.Role("superuser"))
	require.ErrorIs(t, err, ErrBadInput)
}

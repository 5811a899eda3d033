package services

import (
	"context"

	"github.com/avolkovs/bookmarket-cli/internal/client/api"
	"github.com/avolkovs/bookmarket-cli/internal/client/models"
)

// OrderService covers the buyer's purchase flow: instant purchase,
// paying a pending order, and the various history views.
type OrderService interface {
	Purchase(ctx context.Context, bookID int64) (*models.Receipt, error)
	Pay(ctx context.Context, orderID int64) (*models.PaymentResult, error)
	List(ctx context.Context) ([]models.Order, error)
	Invoices(ctx context.Context) ([]models.Invoice, error)
	History(ctx context.Context) (*models.ActivityHistory, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
}

type orderService struct {
	client api.Client
}

func NewOrderService(client api.Client) OrderService {
	return &orderService{client: client}
}

func (s *orderService) Purchase(ctx context.Context, bookID int64) (*models.Receipt, error) {
	return s.client.PurchaseBook(ctx, bookID)
}

func (s *orderService) Pay(ctx context.Context, orderID int64) (*models.PaymentResult, error) {
	return s.client.PayOrder(ctx, orderID)
}

func (s *orderService) List(ctx context.Context) ([]models.Order, error) {
	page, err := s.client.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

func (s *orderService) Invoices(ctx context.Context) ([]models.Invoice, error) {
	return s.client.MyInvoices(ctx)
}

func (s *orderService) History(ctx context.Context) (*models.ActivityHistory, error) {
	return s.client.ActivityHistory(ctx)
}

func (s *orderService) Transactions(ctx context.Context) ([]models.Transaction, error) {
	page, err := s.client.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

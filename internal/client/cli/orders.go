package cli

import (
	"context"
	"fmt"
)

// Buy purchases a book immediately and prints the receipt.
func (a *App) Buy(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter book id")
	if err != nil {
		return err
	}

	r, err := a.orders.Purchase(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(r.Message)
	printlnFn(fmt.Sprintf("Order #%d: %q for %s, tracking %s",
		r.Details.OrderID, r.Details.Book, r.Details.Price, r.Details.TrackingCode))
	return nil
}

// Pay settles a pending order.
func (a *App) Pay(ctx context.Context, args []string) error {
	id, err := argOrPromptID(a.reader, args, "Enter order id")
	if err != nil {
		return err
	}

	res, err := a.orders.Pay(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(res.Message)
	if res.TrackingCode != "" {
		printlnFn("Tracking code:", res.TrackingCode)
	}
	return nil
}

// ListOrders prints the user's orders.
func (a *App) ListOrders(ctx context.Context, _ []string) error {
	orders, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range orders {
		printlnFn(fmt.Sprintf("#%d book %d | %s | %s",
			o.ID, o.Book, o.Status, o.CreatedAt.Format("2006-01-02")))
	}
	return nil
}

// Invoices prints the user's paid invoices.
func (a *App) Invoices(ctx context.Context, _ []string) error {
	invoices, err := a.orders.Invoices(ctx)
	if err != nil {
		return err
	}
	for _, inv := range invoices {
		printlnFn(fmt.Sprintf("#%d %q %s | %s/%s | tracking %s",
			inv.ID, inv.BookTitle, inv.TotalPrice, inv.Status, inv.PaymentStatus, inv.TrackingCode))
	}
	return nil
}

// Transactions prints the user's payment records.
func (a *App) Transactions(ctx context.Context, _ []string) error {
	txs, err := a.orders.Transactions(ctx)
	if err != nil {
		return err
	}
	for _, tx := range txs {
		printlnFn(fmt.Sprintf("#%d order %d | %s | %s | ref %s",
			tx.ID, tx.Order, tx.Amount, tx.Status, tx.RefID))
	}
	return nil
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
	"github.com/avolkovs/bookmarket-cli/internal/logging"
)

// maxErrorBody caps how much of an error response body is read when
// decoding failure payloads.
const maxErrorBody = 64 << 10

// HTTPClient implements Client over net/http. Safe for concurrent use;
// the token pair is guarded because the REPL may issue requests while the
// session layer rotates credentials.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the API rooted at baseURL
// (e.g. "http://localhost:8000/api"). timeout bounds every request;
// the session layer defines no timeout policy of its own.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
		log:     log,
	}
}

func (c *HTTPClient) Close() error {
	c.hc.CloseIdleConnections()
	return nil
}

func (c *HTTPClient) SetTokens(access, refresh string) {
	c.mu.Lock()
	c.accessToken = access
	c.refreshToken = refresh
	c.mu.Unlock()
}

func (c *HTTPClient) ClearTokens() {
	c.SetTokens("", "")
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

// do performs one JSON round trip. A nil out discards the response body.
// Transport-level failures map to ErrUnavailable; non-2xx statuses map to
// *Error via decodeError.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if tok := c.bearer(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w: %v", method, path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		c.log.Debug(ctx, "api error", "method", method, "path", path, "status", resp.StatusCode)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError turns a non-2xx response into *Error. Bodies come in two
// shapes: {"detail": "..."} and {"field": ["msg", ...]}. Anything else
// (including an unreadable body) yields an Error with only the status.
func decodeError(resp *http.Response) *Error {
	e := &Error{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return e
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return e
	}

	if d, ok := raw["detail"]; ok {
		var detail string
		if json.Unmarshal(d, &detail) == nil {
			e.Detail = detail
			delete(raw, "detail")
		}
	}
	if d, ok := raw["error"]; ok {
		var detail string
		if json.Unmarshal(d, &detail) == nil && e.Detail == "" {
			e.Detail = detail
			delete(raw, "error")
		}
	}

	for field, msg := range raw {
		var many []string
		if json.Unmarshal(msg, &many) == nil {
			if e.Fields == nil {
				e.Fields = make(map[string][]string)
			}
			e.Fields[field] = many
			continue
		}
		var one string
		if json.Unmarshal(msg, &one) == nil {
			if e.Fields == nil {
				e.Fields = make(map[string][]string)
			}
			e.Fields[field] = []string{one}
		}
	}
	return e
}

// ---- auth and profile ----

func (c *HTTPClient) ObtainToken(ctx context.Context, username, password string) (models.TokenPair, error) {
	var pair models.TokenPair
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/token/", nil, body, &pair); err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg models.Registration) error {
	return c.do(ctx, http.MethodPost, "/register/", nil, reg, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.UserProfile, error) {
	var u models.UserProfile
	if err := c.do(ctx, http.MethodGet, "/profile/", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, partial map[string]any) (*models.UserProfile, error) {
	var u models.UserProfile
	if err := c.do(ctx, http.MethodPatch, "/profile/", nil, partial, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, username, contact string) (string, error) {
	var resp struct {
		Message string `json:"message"`
		Code    string `json:"code_for_testing"`
	}
	body := map[string]string{"username": username, "contact": contact}
	if err := c.do(ctx, http.MethodPost, "/password-reset/request/", nil, body, &resp); err != nil {
		return "", err
	}
	return resp.Code, nil
}

func (c *HTTPClient) ConfirmPasswordReset(ctx context.Context, contact, code, newPassword string) error {
	body := map[string]string{"contact": contact, "code": code, "new_password": newPassword}
	return c.do(ctx, http.MethodPost, "/password-reset/confirm/", nil, body, nil)
}

func (c *HTTPClient) ActivityHistory(ctx context.Context) (*models.ActivityHistory, error) {
	var h models.ActivityHistory
	if err := c.do(ctx, http.MethodGet, "/profile/history/", nil, nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// ---- catalog ----

// bookFilterQuery adds query-string rendering to the shared filter type.
type bookFilterQuery models.BookFilter

func (f bookFilterQuery) values() url.Values {
	q := url.Values{}
	if f.Category != 0 {
		q.Set("category", strconv.FormatInt(f.Category, 10))
	}
	if f.Condition != "" {
		q.Set("condition", f.Condition)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.PriceMin != "" {
		q.Set("price__gte", f.PriceMin)
	}
	if f.PriceMax != "" {
		q.Set("price__lte", f.PriceMax)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Ordering != "" {
		q.Set("ordering", f.Ordering)
	}
	return q
}

func (c *HTTPClient) ListBooks(ctx context.Context, f models.BookFilter) (models.Page[models.Book], error) {
	var page models.Page[models.Book]
	err := c.do(ctx, http.MethodGet, "/books/", bookFilterQuery(f).values(), nil, &page)
	return page, err
}

func (c *HTTPClient) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	var b models.Book
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/books/%d/", id), nil, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) (models.Page[models.Category], error) {
	var page models.Page[models.Category]
	err := c.do(ctx, http.MethodGet, "/categories/", nil, nil, &page)
	return page, err
}

func (c *HTTPClient) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	if err := c.do(ctx, http.MethodPost, "/categories/", nil, map[string]string{"name": name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id int64, name string) (*models.Category, error) {
	var cat models.Category
	path := fmt.Sprintf("/categories/%d/", id)
	if err := c.do(ctx, http.MethodPatch, path, nil, map[string]string{"name": name}, &cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

func (c *HTTPClient) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/categories/%d/", id), nil, nil, nil)
}

// ---- seller inventory ----

func (c *HTTPClient) MyInventory(ctx context.Context) (models.Page[models.Book], error) {
	var page models.Page[models.Book]
	err := c.do(ctx, http.MethodGet, "/books/my-inventory/", nil, nil, &page)
	return page, err
}

func (c *HTTPClient) AddBook(ctx context.Context, d models.BookDraft) (*models.Book, error) {
	var b models.Book
	if err := c.do(ctx, http.MethodPost, "/books/my-inventory/", nil, d, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) UpdateBook(ctx context.Context, id int64, d models.BookDraft) (*models.Book, error) {
	var b models.Book
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/books/%d/", id), nil, d, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) DeleteBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/books/%d/", id), nil, nil, nil)
}

// ---- favorites ----

func (c *HTTPClient) ListFavorites(ctx context.Context) (models.Page[models.Favorite], error) {
	var page models.Page[models.Favorite]
	err := c.do(ctx, http.MethodGet, "/favorites/", nil, nil, &page)
	return page, err
}

func (c *HTTPClient) AddFavorite(ctx context.Context, bookID int64) (*models.Favorite, error) {
	var fav models.Favorite
	if err := c.do(ctx, http.MethodPost, "/favorites/", nil, map[string]int64{"book": bookID}, &fav); err != nil {
		return nil, err
	}
	return &fav, nil
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, favoriteID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d/", favoriteID), nil, nil, nil)
}

// ---- orders ----

func (c *HTTPClient) PurchaseBook(ctx context.Context, bookID int64) (*models.Receipt, error) {
	var r models.Receipt
	if err := c.do(ctx, http.MethodPost, "/orders/", nil, map[string]int64{"book": bookID}, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) ListOrders(ctx context.Context) (models.Page[models.Order], error) {
	var page models.Page[models.Order]
	err := c.do(ctx, http.MethodGet, "/orders/", nil, nil, &page)
	return page, err
}

func (c *HTTPClient) PayOrder(ctx context.Context, orderID int64) (*models.PaymentResult, error) {
	var r models.PaymentResult
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/pay/", orderID), nil, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) MyInvoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := c.do(ctx, http.MethodGet, "/orders/my-invoices/", nil, nil, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (c *HTTPClient) ListTransactions(ctx context.Context) (models.Page[models.Transaction], error) {
	var page models.Page[models.Transaction]
	err := c.do(ctx, http.MethodGet, "/transactions/", nil, nil, &page)
	return page, err
}

// ---- notifications ----

func (c *HTTPClient) ListNotifications(ctx context.Context) (models.Page[models.Notification], error) {
	var page models.Page[models.Notification]
	err := c.do(ctx, http.MethodGet, "/notifications/", nil, nil, &page)
	return page, err
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/mark-as-read/", id), nil, nil, nil)
}

// ---- support tickets ----

func (c *HTTPClient) ListTickets(ctx context.Context) (models.Page[models.SupportTicket], error) {
	var page models.Page[models.SupportTicket]
	err := c.do(ctx, http.MethodGet, "/support-tickets/", nil, nil, &page)
	return page, err
}

func (c *HTTPClient) CreateTicket(ctx context.Context, subject, message string) (*models.SupportTicket, error) {
	var t models.SupportTicket
	body := map[string]string{"subject": subject, "message": message}
	if err := c.do(ctx, http.MethodPost, "/support-tickets/", nil, body, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *HTTPClient) ReplyTicket(ctx context.Context, id int64, reply string) error {
	path := fmt.Sprintf("/support-tickets/%d/reply/", id)
	return c.do(ctx, http.MethodPost, path, nil, map[string]string{"admin_reply": reply}, nil)
}

// ---- admin ----

func (c *HTTPClient) ApproveBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/books/%d/approve/", id), nil, nil, nil)
}

func (c *HTTPClient) RejectBook(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/books/%d/reject/", id), nil, nil, nil)
}

func (c *HTTPClient) ListUsers(ctx context.Context, search string) (models.Page[models.UserProfile], error) {
	var page models.Page[models.UserProfile]
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	err := c.do(ctx, http.MethodGet, "/users/", q, nil, &page)
	return page, err
}

func (c *HTTPClient) UpdateUserRole(ctx context.Context, userID int64, role models.Role) error {
	path := fmt.Sprintf("/users/%d/update-role/", userID)
	return c.do(ctx, http.MethodPost, path, nil, map[string]string{"role": string(role)}, nil)
}

func (c *HTTPClient) AdminReport(ctx context.Context) (*models.Report, error) {
	var r models.Report
	if err := c.do(ctx, http.MethodGet, "/admin-reports/", nil, nil, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

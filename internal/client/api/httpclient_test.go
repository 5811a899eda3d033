package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/avolkovs/bookmarket-cli/internal/client/models"
	"github.com/avolkovs/bookmarket-cli/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestClient(t *testing.T, h http.HandlerFunc) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second, testLogger())
}

func TestObtainToken_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/token/", r.URL.Path)
		require.Empty(t, r.Header.Get("Authorization"))
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access":"A","refresh":"R"}`))
	})

	pair, err := c.ObtainToken(context.Background(), "alice", "correct")
	require.NoError(t, err)
	require.Equal(t, models.TokenPair{Access: "A", Refresh: "R"}, pair)
}

func TestObtainToken_BadCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"invalid credentials"}`))
	})

	_, err := c.ObtainToken(context.Background(), "alice", "wrong")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "invalid credentials", apiErr.Detail)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestProfile_AttachesBearer(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":1,"username":"alice","role":"buyer","is_staff":false}`))
	})
	c.SetTokens("tok-123", "ref-123")

	u, err := c.Profile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.Equal(t, models.RoleBuyer, u.Role)
}

func TestClearTokens_RemovesBearer(t *testing.T) {
	var got string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"credentials were not provided"}`))
	})
	c.SetTokens("tok", "ref")
	c.ClearTokens()

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Empty(t, got)
}

func TestRegister_FieldValidationErrors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"email":["A user with this email already exists."],
			"phone_number":["This phone number is already in use."]}`))
	})

	err := c.Register(context.Background(), models.Registration{Username: "bob"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Len(t, apiErr.Fields, 2)
	require.Equal(t, []string{"A user with this email already exists."}, apiErr.Fields["email"])
}

func TestDo_TransportFailureMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	c := NewHTTPClient(srv.URL, time.Second, testLogger())

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestListBooks_FilterQueryAndEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "3", q.Get("category"))
		require.Equal(t, "used", q.Get("condition"))
		require.Equal(t, "100", q.Get("price__gte"))
		require.Equal(t, "500", q.Get("price__lte"))
		require.Equal(t, "calvino", q.Get("search"))
		require.Equal(t, "-price", q.Get("ordering"))
		_, _ = w.Write([]byte(`{"count":1,"next":null,"previous":null,
			"results":[{"id":9,"title":"Invisible Cities","price":"250.00","status":"available"}]}`))
	})

	page, err := c.ListBooks(context.Background(), models.BookFilter{
		Category: 3, Condition: "used", PriceMin: "100", PriceMax: "500",
		Search: "calvino", Ordering: "-price",
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, page.Count)
	require.Equal(t, "Invisible Cities", page.Results[0].Title)
}

func TestMyInvoices_BareArray(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders/my-invoices/", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":4,"book_title":"Dune","total_price":"90.00",
			"status":"paid","payment_status":"success","tracking_code":"ab12cd34"}]`))
	})

	invoices, err := c.MyInvoices(context.Background())
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	require.Equal(t, "ab12cd34", invoices[0].TrackingCode)
}

func TestDeleteBook_NoContent(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/books/12/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.DeleteBook(context.Background(), 12))
}

func TestUpdateUserRole_Body(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/7/update-role/", r.URL.Path)
		data, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"role":"seller"}`, string(data))
		_, _ = w.Write([]byte(`{"status":"User role updated to seller"}`))
	})
	require.NoError(t, c.UpdateUserRole(context.Background(), 7, models.RoleSeller))
}

func TestDecodeError_NonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.Profile(context.Background())
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Empty(t, apiErr.Detail)
	require.Empty(t, apiErr.Fields)
	require.False(t, errors.Is(err, ErrUnauthorized))
}

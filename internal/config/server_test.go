package config

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/api/dashboard"
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/pkg/kvstore"
	"FinanceTracker/pkg/log"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_ACCESS_TOKEN_SECRET", "test-secret")
	t.Setenv("BCRYPT_COST", "4")

	logger := log.NewDiscardLogger()
	server, err := NewServer(
		WithFiber(NewFiber(logger)),
		WithLogger(logger),
		WithStore(kvstore.NewMemory(0)),
		WithMiddleware(),
		WithBcryptUtils(),
		WithUtils(),
	)
	require.NoError(t, err)

	server.RegisterHandler()
	server.Mount()
	return server.App()
}

type client struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func (c client) do(method, path, body string) (int, []byte) {
	c.t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.app.Test(req, -1)
	require.NoError(c.t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(c.t, err)
	return res.StatusCode, raw
}

func TestNewServerRequiresStorage(t *testing.T) {
	logger := log.NewDiscardLogger()
	_, err := NewServer(WithFiber(NewFiber(logger)), WithLogger(logger))
	assert.Error(t, err)
}

func TestServerFlow(t *testing.T) {
	app := newTestServer(t)
	c := client{t: t, app: app}

	status, raw := c.do(http.MethodPost, "/api/v1/auth/register", `{"email":"bia@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var login auth.LoginUserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &login))
	c.token = login.AccessToken

	status, raw = c.do(http.MethodPost, "/api/v1/transactions", `{"description":"Salary","amount":5000,"date":"2024-05-02","type":"income","category":"salary"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, raw = c.do(http.MethodPost, "/api/v1/transactions", `{"description":"Rent","amount":1500,"date":"2024-05-01","type":"expense","category":"housing","is_recurring":true,"due_date":"2024-05-05"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var rent transaction.TransactionResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &rent))
	assert.True(t, rent.IsRecurring)
	assert.False(t, rent.IsPaid)
	assert.Equal(t, "2024-05-05", rent.DueDate)

	status, raw = c.do(http.MethodPatch, "/api/v1/transactions/"+rent.ID+"/paid", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	require.NoError(t, jsoniter.Unmarshal(raw, &rent))
	assert.True(t, rent.IsPaid)

	status, raw = c.do(http.MethodGet, "/api/v1/transactions", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	var list transaction.TransactionListResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &list))
	assert.Len(t, list.Transactions, 2)

	status, raw = c.do(http.MethodGet, "/api/v1/dashboard/summary", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.JSONEq(t, `{"total_income":5000,"total_expenses":1500,"balance":3500}`, string(raw))

	status, raw = c.do(http.MethodGet, "/api/v1/dashboard/distribution?view=year", "")
	assert.Equal(t, http.StatusBadRequest, status, string(raw))

	status, raw = c.do(http.MethodGet, "/api/v1/dashboard/bills?locale=en-US", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	var bills dashboard.BillsResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &bills))
	require.Len(t, bills.Bills, 1)
	assert.Equal(t, "paid", bills.Bills[0].Status)

	status, raw = c.do(http.MethodGet, "/api/v1/transactions/export?locale=en-US", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.True(t, strings.HasPrefix(string(raw), "ID,Description,Amount,Date,Type,Category,Recurring,Due Date\r\n"))

	status, _ = c.do(http.MethodPost, "/api/v1/transactions/export/archive", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)

	status, raw = c.do(http.MethodPost, "/api/v1/transactions/export/archive?locale=not-a-real-locale", "")
	assert.Equal(t, http.StatusBadRequest, status, string(raw))
	assert.Contains(t, string(raw), "VALIDATION_ERROR")

	status, _ = c.do(http.MethodDelete, "/api/v1/transactions/"+rent.ID, "")
	assert.Equal(t, http.StatusNoContent, status)

	status, _ = c.do(http.MethodGet, "/api/v1/transactions/"+rent.ID, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCategoryConflict(t *testing.T) {
	app := newTestServer(t)
	c := client{t: t, app: app}

	status, raw := c.do(http.MethodPost, "/api/v1/auth/register", `{"email":"caio@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	var login auth.LoginUserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &login))
	c.token = login.AccessToken

	status, raw = c.do(http.MethodPost, "/api/v1/categories", `{"name":"Pets","color":"#112233"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	var created struct {
		Key string `json:"key"`
	}
	require.NoError(t, jsoniter.Unmarshal(raw, &created))

	status, raw = c.do(http.MethodPost, "/api/v1/transactions", `{"description":"Vet","amount":80,"date":"2024-05-03","type":"expense","category":"`+created.Key+`"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, _ = c.do(http.MethodDelete, "/api/v1/categories/"+created.Key, "")
	assert.Equal(t, http.StatusConflict, status)

	status, raw = c.do(http.MethodGet, "/api/v1/categories/all?locale=en-US", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.Contains(t, string(raw), `"name":"Pets"`)
	assert.Contains(t, string(raw), `"name":"Food"`)

	status, _ = c.do(http.MethodPost, "/api/v1/transactions", `{"description":"Gift","amount":10,"date":"2024-05-03","type":"expense","category":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDeleteCategoryWithReservedCharacters(t *testing.T) {
	app := newTestServer(t)
	c := client{t: t, app: app}

	status, raw := c.do(http.MethodPost, "/api/v1/auth/register", `{"email":"duda@example.com","password":"hunter22"}`)
	require.Equal(t, http.StatusCreated, status, string(raw))
	var login auth.LoginUserResponse
	require.NoError(t, jsoniter.Unmarshal(raw, &login))
	c.token = login.AccessToken

	for _, name := range []string{"Alimentação", "Food/Drinks", "50% off"} {
		t.Run(name, func(t *testing.T) {
			c.t = t

			status, raw := c.do(http.MethodPost, "/api/v1/categories", `{"name":"`+name+`"}`)
			require.Equal(t, http.StatusCreated, status, string(raw))

			var created struct {
				Key string `json:"key"`
			}
			require.NoError(t, jsoniter.Unmarshal(raw, &created))
			assert.NotContains(t, created.Key, "/")
			assert.NotContains(t, created.Key, "%")

			status, raw = c.do(http.MethodDelete, "/api/v1/categories/"+url.PathEscape(created.Key), "")
			assert.Equal(t, http.StatusNoContent, status, string(raw))
		})
	}

	c.t = t
	status, raw = c.do(http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.NotContains(t, string(raw), `"key"`)
}

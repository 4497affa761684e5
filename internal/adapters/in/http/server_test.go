package http_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpadapter "loanaudit/internal/adapters/in/http"
	"loanaudit/internal/adapters/out/memory"
	"loanaudit/internal/core/application/usecases/commands"
	"loanaudit/internal/core/application/usecases/queries"
	"loanaudit/internal/core/domain/model/kernel"
	"loanaudit/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var startedAt = time.Date(2025, 11, 20, 9, 0, 0, 0, time.UTC)

type orderUoWFactory func() commands.OrderUoW

func (f orderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type fixture struct {
	e     *echo.Echo
	clock *kernel.FixedClock
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	store := memory.NewStore()
	uowFactory := memory.NewUnitOfWorkFactory(store)
	var factory commands.OrderUoWFactory = orderUoWFactory(func() commands.OrderUoW {
		return uowFactory.Create()
	})
	clock := kernel.NewFixedClock(startedAt)
	logger := slog.New(slog.DiscardHandler)

	server := httpadapter.NewServer(
		commands.NewCreateOrderCommandHandler(factory, clock),
		commands.NewApplyAuditActionCommandHandler(factory, clock, nil, logger),
		queries.NewGetOrderQueryHandler(store),
		queries.NewListOrdersQueryHandler(store),
		queries.NewGetInboxQueryHandler(store),
		queries.NewCountByStatusQueryHandler(store),
		clock,
		logger,
	)

	e := echo.New()
	require.NoError(t, httpadapter.Register(e, server))

	return fixture{e: e, clock: clock}
}

func (f fixture) do(t *testing.T, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func (f fixture) createOrder(t *testing.T, customer string) servers.Order {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/api/v1/orders", map[string]any{
		"customerName": customer,
		"amount":       "500万",
		"loanType":     "企业经营贷",
		"channel":      "张三",
		"details":      map[string]any{"companyName": "某某科技有限公司"},
		"documents": map[string]any{
			"idCard": true, "businessLicense": true, "companyCredit": false, "personalCredit": false,
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created servers.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func (f fixture) act(t *testing.T, id string, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	return f.do(t, http.MethodPost, "/api/v1/orders/"+id+"/actions", body)
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_CreateOrder(t *testing.T) {
	t.Run("should create an order in PENDING_UPLOAD", func(t *testing.T) {
		f := newFixture(t)

		created := f.createOrder(t, "王某某")

		assert.True(t, strings.HasPrefix(created.Id, "OD20251120"))
		assert.Equal(t, servers.OrderStatusPENDINGUPLOAD, created.Status)
		assert.Equal(t, "待上传资料", created.StatusLabel)
		assert.Equal(t, 0, created.TimelineStep)
		assert.Equal(t, 1, created.Version)
		assert.Nil(t, created.AuditData)
		assert.True(t, startedAt.Equal(created.CreatedAt))
		require.NotNil(t, created.Details.CompanyName)
		assert.Equal(t, "某某科技有限公司", *created.Details.CompanyName)
		assert.True(t, created.Documents.IdCard)
		assert.False(t, created.Documents.PersonalCredit)
	})

	t.Run("should reject a body without required fields", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/orders", map[string]any{"amount": "1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a blank customer name", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/orders", map[string]any{"customerName": "  ", "amount": "1"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[servers.Error](t, rec).Message, "customer name")
	})
}

func TestServer_Workflow(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t, "王某某")

	t.Run("should share as initiator", func(t *testing.T) {
		rec := f.act(t, created.Id, map[string]any{"role": "INITIATOR", "action": "share"})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		view := decode[servers.OrderView](t, rec)
		assert.Equal(t, servers.OrderStatusPENDINGAUDIT, view.Order.Status)
		assert.Equal(t, servers.ViewKindMANAGERWAITING, view.View)
		assert.Empty(t, view.Actions)
		assert.Equal(t, 2, view.Order.Version)
	})

	t.Run("should show the form to delivery", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/"+created.Id+"?role=DELIVERY", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		view := decode[servers.OrderView](t, rec)
		assert.Equal(t, servers.ViewKindDELIVERYFORM, view.View)
		assert.Equal(t, []servers.Action{servers.ActionSubmitProposal}, view.Actions)
	})

	t.Run("should name missing proposal fields", func(t *testing.T) {
		rec := f.act(t, created.Id, map[string]any{
			"role":     "DELIVERY",
			"action":   "submitProposal",
			"proposal": map[string]any{"limit": "", "product": "工行经营贷"},
		})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
		body := decode[servers.Error](t, rec)
		require.NotNil(t, body.Fields)
		assert.Equal(t, []string{"limit"}, *body.Fields)
	})

	t.Run("should submit a proposal as delivery", func(t *testing.T) {
		f.clock.Advance(time.Hour)

		rec := f.act(t, created.Id, map[string]any{
			"role":            "DELIVERY",
			"action":          "submitProposal",
			"proposal":        map[string]any{"limit": " 500万 ", "product": "工行经营贷", "remark": "流水充足"},
			"expectedVersion": 2,
		})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		view := decode[servers.OrderView](t, rec)
		assert.Equal(t, servers.OrderStatusPENDINGAPPROVAL, view.Order.Status)
		assert.Equal(t, servers.ViewKindDELIVERYWAITING, view.View)
		require.NotNil(t, view.Order.AuditData)
		assert.Equal(t, "500万", view.Order.AuditData.Limit)
		require.NotNil(t, view.Order.AuditData.SubmittedAt)
		assert.True(t, startedAt.Add(time.Hour).Equal(*view.Order.AuditData.SubmittedAt))
		assert.Nil(t, view.Order.AuditData.ApprovedAt)
	})

	t.Run("should refuse approval from the initiator", func(t *testing.T) {
		rec := f.act(t, created.Id, map[string]any{"role": "INITIATOR", "action": "approve"})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should refuse a stale expected version", func(t *testing.T) {
		rec := f.act(t, created.Id, map[string]any{"role": "MANAGER", "action": "approve", "expectedVersion": 2})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("should approve as manager", func(t *testing.T) {
		f.clock.Advance(time.Hour)

		rec := f.act(t, created.Id, map[string]any{"role": "MANAGER", "action": "approve", "expectedVersion": 3})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		view := decode[servers.OrderView](t, rec)
		assert.Equal(t, servers.OrderStatusAUDITCOMPLETE, view.Order.Status)
		assert.Equal(t, servers.ViewKindAPPROVEDSUMMARY, view.View)
		assert.Equal(t, 3, view.Order.TimelineStep)
		assert.Equal(t, 4, view.Order.Version)
		require.NotNil(t, view.Order.AuditData.ApprovedAt)
		assert.True(t, startedAt.Add(2*time.Hour).Equal(*view.Order.AuditData.ApprovedAt))
	})
}

func TestServer_Errors(t *testing.T) {
	f := newFixture(t)
	created := f.createOrder(t, "王某某")

	testCases := []struct {
		name     string
		method   string
		target   string
		body     any
		expected int
	}{
		{"unknown order", http.MethodGet, "/api/v1/orders/OD404?role=MANAGER", nil, http.StatusNotFound},
		{"missing role", http.MethodGet, "/api/v1/orders/" + created.Id, nil, http.StatusBadRequest},
		{"unknown role", http.MethodGet, "/api/v1/orders/" + created.Id + "?role=ADMIN", nil, http.StatusBadRequest},
		{
			"unknown action", http.MethodPost, "/api/v1/orders/" + created.Id + "/actions",
			map[string]any{"role": "MANAGER", "action": "complete"}, http.StatusBadRequest,
		},
		{
			"action on unknown order", http.MethodPost, "/api/v1/orders/OD404/actions",
			map[string]any{"role": "INITIATOR", "action": "share"}, http.StatusNotFound,
		},
		{"unknown status filter", http.MethodGet, "/api/v1/orders?status=DONE", nil, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run("should answer "+tc.name, func(t *testing.T) {
			rec := f.do(t, tc.method, tc.target, tc.body)

			assert.Equal(t, tc.expected, rec.Code, rec.Body.String())
			assert.Equal(t, tc.expected, decode[servers.Error](t, rec).Code)
		})
	}
}

func TestServer_ListInboxAndStats(t *testing.T) {
	f := newFixture(t)
	wang := f.createOrder(t, "王某某")
	f.clock.Advance(time.Minute)
	li := f.createOrder(t, "李某某")
	f.clock.Advance(time.Minute)
	zhao := f.createOrder(t, "赵某某")

	require.Equal(t, http.StatusOK, f.act(t, li.Id, map[string]any{"role": "INITIATOR", "action": "share"}).Code)

	t.Run("should list newest first", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]servers.OrderSummary](t, rec)
		require.Len(t, list, 3)
		assert.Equal(t, []string{zhao.Id, li.Id, wang.Id}, []string{list[0].Id, list[1].Id, list[2].Id})
	})

	t.Run("should filter by status and search", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders?status=PENDING_UPLOAD&search=%E7%8E%8B", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		list := decode[[]servers.OrderSummary](t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, wang.Id, list[0].Id)
	})

	t.Run("should search IDs case-insensitively", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders?search="+strings.ToLower(li.Id), nil)

		list := decode[[]servers.OrderSummary](t, rec)
		require.Len(t, list, 1)
		assert.Equal(t, li.Id, list[0].Id)
	})

	t.Run("should return each role's inbox", func(t *testing.T) {
		initiator := decode[[]servers.OrderSummary](t, f.do(t, http.MethodGet, "/api/v1/inbox?role=INITIATOR", nil))
		delivery := decode[[]servers.OrderSummary](t, f.do(t, http.MethodGet, "/api/v1/inbox?role=DELIVERY", nil))
		manager := decode[[]servers.OrderSummary](t, f.do(t, http.MethodGet, "/api/v1/inbox?role=MANAGER", nil))

		assert.Len(t, initiator, 2)
		require.Len(t, delivery, 1)
		assert.Equal(t, li.Id, delivery[0].Id)
		assert.Empty(t, manager)
	})

	t.Run("should count orders per status", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/stats", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		stats := decode[servers.Stats](t, rec)
		assert.Equal(t, 3, stats.Total)
		require.Len(t, stats.Counts, 5)
		assert.Equal(t, servers.StatusCount{
			Status: servers.OrderStatusPENDINGUPLOAD, Label: "待上传资料", Count: 2,
		}, stats.Counts[0])
		assert.Equal(t, 1, stats.Counts[1].Count)
		assert.Equal(t, 0, stats.Counts[4].Count)
	})
}

func TestServer_Probes(t *testing.T) {
	f := newFixture(t)

	t.Run("should report health", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})

	t.Run("should serve the API document", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/swagger/doc.json", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Loan Audit")
	})
}

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/date"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(Options{BaseURL: srv.URL, Prefix: "api", Token: "secret"})
	require.NoError(t, err)
	return c
}

func TestNew(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
	_, err = New(Options{BaseURL: "backend.local"})
	assert.Error(t, err)
	_, err = New(Options{BaseURL: "https://backend.local"})
	assert.NoError(t, err)
}

func TestClient_PrefixAndHeaders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/available_providers", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, err := uuid.Parse(r.Header.Get("X-Request-ID"))
		assert.NoError(t, err, "X-Request-ID must be a uuid")
		w.Write([]byte(`[{"id":1,"name":"Aviva","status":"active"},{"id":2,"name":"Zurich","status":"inactive"}]`))
	})

	providers, err := c.Providers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []wealthdesk.Provider{
		{ID: 1, Name: "Aviva", Status: wealthdesk.Active},
		{ID: 2, Name: "Zurich", Status: wealthdesk.Inactive},
	}, providers)
}

func TestClient_PrefixAfterBasePath(t *testing.T) {
	tests := []struct {
		base, prefix, want string
	}{
		{"/wealth", "/api", "/wealth/api/client_groups"},
		{"/wealth/", "api/", "/wealth/api/client_groups"},
		{"", "/api", "/api/client_groups"},
		{"/wealth", "", "/wealth/client_groups"},
	}
	for _, tt := range tests {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.URL.Path
			w.Write([]byte(`[]`))
		}))
		c, err := New(Options{BaseURL: srv.URL + tt.base, Prefix: tt.prefix})
		require.NoError(t, err)
		_, err = c.ClientGroups(context.Background())
		srv.Close()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "base %q, prefix %q", tt.base, tt.prefix)
	}
}

func TestClient_ScheduledTransactionActions(t *testing.T) {
	var calls []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.RequestURI())
		switch r.URL.Path {
		case "/api/scheduled_transactions/7/pause":
			w.Write([]byte(`{"id":7,"status":"paused","amount":"100"}`))
		case "/api/scheduled_transactions/7/resume":
			w.Write([]byte(`{"id":7,"status":"active","amount":"100"}`))
		case "/api/scheduled_transactions/7":
			w.WriteHeader(http.StatusNoContent)
		case "/api/scheduled_transactions/execute_pending":
			w.Write([]byte(`{"target_date":"2024-03-31","executed_count":3,"failed_count":1}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	tx, err := c.PauseScheduledTransaction(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, wealthdesk.SchedulePaused, tx.Status)

	tx, err = c.ResumeScheduledTransaction(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, wealthdesk.ScheduleActive, tx.Status)

	require.NoError(t, c.CancelScheduledTransaction(ctx, 7))

	summary, err := c.ExecutePending(ctx, date.New(2024, 3, 31))
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Executed)
	assert.Equal(t, 1, summary.Failed)

	assert.Equal(t, []string{
		"POST /api/scheduled_transactions/7/pause",
		"POST /api/scheduled_transactions/7/resume",
		"DELETE /api/scheduled_transactions/7",
		"POST /api/scheduled_transactions/execute_pending?target_date=2024-03-31",
	}, calls)
}

func TestClient_UpdateLegalDocumentStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/legal_documents/4/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status":"Lapsed"}`, string(body))
		w.Write([]byte(`{"id":4,"type":"Will","status":"Lapsed","document_date":"2020-01-01","product_owner_ids":[1]}`))
	})
	doc, err := c.UpdateLegalDocumentStatus(context.Background(), 4, wealthdesk.Lapsed)
	require.NoError(t, err)
	assert.Equal(t, wealthdesk.Lapsed, doc.Status)
	assert.Equal(t, date.New(2020, 1, 1), doc.DocumentDate)
}

func TestClient_MultipleFundIRR(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req wealthdesk.IRRRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int{3, 5}, req.PortfolioFundIDs)
		assert.Equal(t, "2024-02-29", req.IRRDate)
		w.Write([]byte(`{"irr_percentage":6.42}`))
	})
	resp, err := c.MultipleFundIRR(context.Background(), wealthdesk.IRRRequest{PortfolioFundIDs: []int{3, 5}, IRRDate: "2024-02-29"})
	require.NoError(t, err)
	require.NotNil(t, resp.IRRPercentage)
	assert.InDelta(t, 6.42, *resp.IRRPercentage, 1e-9)
}

func TestClient_Errors(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"detail":"Duplicate entry"}`))
	})
	_, err := c.CreateClientGroup(context.Background(), wealthdesk.ClientGroup{Name: "Smith"})
	require.Error(t, err)
	assert.Equal(t, KindConflict, Classify(err))
	assert.Equal(t, http.StatusConflict, StatusCode(err))
	assert.Equal(t, MsgConflict, FormatError(err))
}

func TestClient_Canceled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Funds(ctx)
	require.Error(t, err)
	assert.True(t, IsCanceled(err))
	assert.False(t, IsRetryable(err))
}

func TestLegalDocumentPatch_Apply(t *testing.T) {
	notes := "kept at the solicitor"
	doc := wealthdesk.LegalDocument{ID: 1, Type: "Will", Status: wealthdesk.Signed, ProductOwnerIDs: []int{1}}
	got := LegalDocumentPatch{Notes: &notes}.Apply(doc)
	assert.Equal(t, "Will", got.Type)
	assert.Equal(t, notes, got.Notes)
	assert.Equal(t, wealthdesk.Signed, got.Status)
}

package agent

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/hooks"
	"github.com/etnz/wealthdesk/hooks/mocks"
	"github.com/etnz/wealthdesk/query"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newSources(m hooks.API) Sources {
	cache := query.NewClient(query.Options{StaleTime: time.Minute, IsCanceled: api.IsCanceled})
	return Sources{
		ClientGroups:          hooks.NewClientGroups(m, cache, nil),
		SpecialRelationships:  hooks.NewSpecialRelationships(m, cache, nil),
		ProductOwners:         hooks.NewProductOwners(m, cache, nil),
		LegalDocuments:        hooks.NewLegalDocuments(m, cache, nil),
		ScheduledTransactions: hooks.NewScheduledTransactions(m, cache, nil),
		Catalog:               hooks.NewCatalog(m, cache, nil),
	}
}

func call(t *testing.T, e *Expert, name string, args map[string]any) (string, string) {
	t.Helper()
	resp := e.Library(context.Background(), &genai.FunctionCall{ID: "c1", Name: name, Args: args})
	require.NotNil(t, resp)
	assert.Equal(t, "c1", resp.ID)
	assert.Equal(t, name, resp.Name)
	out, _ := resp.Response["output"].(string)
	errText, _ := resp.Response["error"].(string)
	return out, errText
}

func TestLibrary_UnknownFunction(t *testing.T) {
	e := NewAdministrator("model", Sources{})
	out, errText := call(t, e, "ledger", nil)
	assert.Empty(t, out)
	assert.Equal(t, "unknown function ledger", errText)
}

func TestAdministrator_ClientGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	m.EXPECT().ClientGroups(gomock.Any()).Return([]wealthdesk.ClientGroup{
		{ID: 1, Name: "Smith family", Type: wealthdesk.Family, Status: wealthdesk.Active},
		{ID: 2, Name: "Jones trust", Type: wealthdesk.Trust, Status: wealthdesk.Active},
	}, nil)

	out, errText := call(t, NewAdministrator("model", newSources(m)), "client_groups", nil)
	require.Empty(t, errText)
	assert.Contains(t, out, "Smith family")
	assert.Contains(t, out, "Jones trust")
	assert.True(t, strings.HasPrefix(out, "|"), "a markdown table, got %q", out)
}

func TestAdministrator_LegalDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	m.EXPECT().LegalDocuments(gomock.Any(), 7).Return([]wealthdesk.LegalDocument{}, nil)

	// models often send ids as strings
	out, errText := call(t, NewAdministrator("model", newSources(m)), "legal_documents", map[string]any{"owner_id": "7"})
	require.Empty(t, errText)
	assert.Equal(t, "Product owner 7 has no legal documents.", out)

	_, errText = call(t, NewAdministrator("model", newSources(m)), "legal_documents", map[string]any{})
	assert.Equal(t, `missing argument "owner_id"`, errText)
}

func TestAdministrator_SpecialRelationships(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	m.EXPECT().SpecialRelationships(gomock.Any(), 3).Return([]wealthdesk.SpecialRelationship{
		{ID: 1, ClientGroupID: 3, Type: wealthdesk.Professional, Name: "J. Carter", Relationship: "Solicitor", Status: wealthdesk.Active},
	}, nil)

	out, errText := call(t, NewAdministrator("model", newSources(m)), "special_relationships", map[string]any{"client_group_id": float64(3)})
	require.Empty(t, errText)
	assert.Contains(t, out, "J. Carter")
	assert.Contains(t, out, "Solicitor")
}

func TestAdministrator_BackendError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	m.EXPECT().ProductOwners(gomock.Any()).Return(nil, &api.Error{Status: 500, Detail: "database unavailable"})

	out, errText := call(t, NewAdministrator("model", newSources(m)), "product_owners", nil)
	assert.Empty(t, out)
	assert.Contains(t, errText, "database unavailable")
}

func TestAnalyst_UnknownCatalog(t *testing.T) {
	_, errText := call(t, NewAnalyst("model", Sources{}), "catalog", map[string]any{"kind": "bonds"})
	assert.Contains(t, errText, `unknown catalog "bonds"`)
}

func TestFacilitator(t *testing.T) {
	f := newFacilitator("model", NewAdministrator("model", Sources{}), NewResearcher("model"))

	var names []string
	for _, d := range f.Config.Tools[0].FunctionDeclarations {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Administrator", "Researcher", "topic"}, names)

	out, errText := call(t, f, "topic", map[string]any{"name": "irr"})
	require.Empty(t, errText)
	assert.True(t, strings.HasPrefix(out, "# "), "topic must start with a title, got %q", out)

	_, errText = call(t, f, "topic", map[string]any{"name": "no-such-topic"})
	assert.Contains(t, errText, `topic "no-such-topic" not found`)
}

func TestExpert_CallWithoutQuestion(t *testing.T) {
	e := NewResearcher("model")
	resp := e.Call(context.Background(), "c2", map[string]any{})
	assert.Equal(t, "missing argument 'question'", resp.Response["error"])
}

func TestIntsArg(t *testing.T) {
	tests := []struct {
		in   any
		want []int
		err  bool
	}{
		{in: []any{float64(1), float64(2)}, want: []int{1, 2}},
		{in: []any{"3", float64(4)}, want: []int{3, 4}},
		{in: "5, 6,", want: []int{5, 6}},
		{in: float64(7), want: []int{7}},
		{in: "x", err: true},
		{in: nil, err: true},
	}
	for _, tt := range tests {
		got, err := intsArg(map[string]any{"ids": tt.in}, "ids")
		if tt.err {
			assert.Error(t, err, "intsArg(%v)", tt.in)
			continue
		}
		require.NoError(t, err, "intsArg(%v)", tt.in)
		assert.Equal(t, tt.want, got, "intsArg(%v)", tt.in)
	}
}

func TestAgent_SetLogger(t *testing.T) {
	admin := NewAdministrator("model", Sources{})
	a := New(io.Discard, strings.NewReader(""), "model", admin)
	assert.NotNil(t, admin.logger(), "experts log nowhere by default")

	var logs bytes.Buffer
	l := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	a.SetLogger(l)
	assert.Same(t, l, admin.Logger)
	assert.Same(t, l, a.Facilitator.Logger)
}

package report_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/etnz/wealthdesk"
	"github.com/etnz/wealthdesk/api"
	"github.com/etnz/wealthdesk/date"
	"github.com/etnz/wealthdesk/format"
	"github.com/etnz/wealthdesk/report"
	"github.com/etnz/wealthdesk/report/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestNormalizeIRRDate(t *testing.T) {
	tests := []struct{ in, want string }{
		{"2024-03", "2024-03-31"},
		{"2024-02", "2024-02-29"},
		{"2023-02", "2023-02-28"},
		{"2024-12", "2024-12-31"},
		{"2024-03-15", "2024-03-15"},
		{"", ""},
		{"March 2024", "March 2024"},
		{"2024-13", "2024-13"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, report.NormalizeIRRDate(tt.in), "NormalizeIRRDate(%q)", tt.in)
	}
}

func TestService_LatestProductIRR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	s := report.NewService(m, nil)
	ctx := context.Background()

	gomock.InOrder(
		m.EXPECT().Product(gomock.Any(), 10).Return(wealthdesk.Product{ID: 10, PortfolioID: 77}, nil),
		m.EXPECT().LatestPortfolioIRR(gomock.Any(), 77).Return(wealthdesk.LatestIRR{PortfolioID: 77, IRR: ptr(5.25), Date: date.New(2024, 3, 31)}, nil),
	)
	irr := s.LatestProductIRR(ctx, 10)
	require.NotNil(t, irr)
	assert.InDelta(t, 5.25, *irr.IRR, 1e-9)

	m.EXPECT().Product(gomock.Any(), 11).Return(wealthdesk.Product{}, &api.Error{Status: 404})
	assert.Nil(t, s.LatestProductIRR(ctx, 11))

	m.EXPECT().Product(gomock.Any(), 12).Return(wealthdesk.Product{ID: 12, PortfolioID: 78}, nil)
	m.EXPECT().LatestPortfolioIRR(gomock.Any(), 78).Return(wealthdesk.LatestIRR{}, &api.Error{Status: 500})
	assert.Nil(t, s.LatestProductIRR(ctx, 12))

	m.EXPECT().Product(gomock.Any(), 13).Return(wealthdesk.Product{ID: 13}, nil)
	assert.Nil(t, s.LatestProductIRR(ctx, 13), "a product without portfolio has no IRR")
}

func TestService_HistoricalIRR_AlwaysRefetches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	s := report.NewService(m, nil)

	fresh := []wealthdesk.HistoricalIRR{{ProductID: 1, IRR: ptr(58.6), Date: date.New(2024, 3, 31)}}
	stale := []wealthdesk.HistoricalIRR{{ProductID: 1, IRR: ptr(48.6), Date: date.New(2024, 3, 31)}}
	m.EXPECT().ProductIRRHistory(gomock.Any(), 1).Return(fresh, nil).Times(1)
	m.EXPECT().ProductIRRHistory(gomock.Any(), 2).Return(nil, errors.New("timeout"))

	got := s.HistoricalIRR(context.Background(), []int{1, 2}, map[int][]wealthdesk.HistoricalIRR{1: stale})
	assert.Equal(t, fresh, got[1])
	v, ok := got[2]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func products() []wealthdesk.Product {
	return []wealthdesk.Product{
		{ID: 1, ProductName: "Pension", Valuation: ptr(decimal.NewFromInt(120000)), Funds: []wealthdesk.ProductFund{
			{ID: 3}, {ID: 5}, {ID: 99, Virtual: true, InactiveFundIDs: []int{7}},
		}},
		{ID: 2, ProductName: "ISA", Valuation: ptr(decimal.NewFromInt(30000)), Funds: []wealthdesk.ProductFund{
			{ID: 5}, {ID: 8},
		}},
	}
}

func TestFundIDs(t *testing.T) {
	assert.Equal(t, []int{3, 5, 8}, report.FundIDs(products()))
	assert.Empty(t, report.FundIDs(nil))
}

func TestService_RealtimeTotalIRR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	s := report.NewService(m, nil)
	ctx := context.Background()

	m.EXPECT().MultipleFundIRR(gomock.Any(), wealthdesk.IRRRequest{PortfolioFundIDs: []int{3, 5, 8}, IRRDate: "2024-02-29"}).
		Return(wealthdesk.IRRResponse{IRRPercentage: ptr(6.4)}, nil).Times(1)
	got := s.RealtimeTotalIRR(ctx, products(), "2024-02")
	require.NotNil(t, got)
	assert.InDelta(t, 6.4, *got, 1e-9)

	m.EXPECT().MultipleFundIRR(gomock.Any(), gomock.Any()).Return(wealthdesk.IRRResponse{}, &api.Error{Code: api.CodeTimeout})
	assert.Nil(t, s.RealtimeTotalIRR(ctx, products(), "2024-02-15"))

	assert.Nil(t, s.RealtimeTotalIRR(ctx, nil, "2024-02"), "no request without funds")
}

func TestService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	s := report.NewService(m, nil)
	ps := products()
	ps[0].PortfolioID = 40

	// each product is fetched once, its portfolio id is reused for the latest IRR
	m.EXPECT().Product(gomock.Any(), 1).Return(ps[0], nil).Times(1)
	m.EXPECT().Product(gomock.Any(), 2).Return(ps[1], nil).Times(1)
	m.EXPECT().Product(gomock.Any(), 3).Return(wealthdesk.Product{}, &api.Error{Status: 404}).Times(1)
	m.EXPECT().LatestPortfolioIRR(gomock.Any(), 40).Return(wealthdesk.LatestIRR{IRR: ptr(6.1)}, nil).Times(1)
	m.EXPECT().MultipleFundIRR(gomock.Any(), gomock.Any()).Return(wealthdesk.IRRResponse{IRRPercentage: ptr(4.5)}, nil)

	state := report.NewState()
	events, stop := state.Subscribe(64)
	require.NoError(t, s.Build(context.Background(), state, []int{1, 2, 3}, "2024-03"))
	stop()

	v := state.Values()
	assert.Len(t, v.Products, 2, "the missing product is left out")
	assert.Equal(t, "2024-03-31", v.IRRDate)
	require.NotNil(t, v.IRRs[1])
	assert.InDelta(t, 6.1, *v.IRRs[1], 1e-9)
	assert.Nil(t, v.IRRs[2], "a product without portfolio has no IRR")
	assert.InDelta(t, 4.5, *v.Total, 1e-9)
	assert.False(t, v.Loading)

	var kinds []report.StateEventKind
	for ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	require.NotEmpty(t, kinds)
	assert.Equal(t, report.LoadingChanged, kinds[0])
	assert.Equal(t, report.LoadingChanged, kinds[len(kinds)-1])
	assert.Contains(t, kinds, report.TotalChanged)
}

func TestService_Build_NothingFetched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	s := report.NewService(m, nil)
	m.EXPECT().Product(gomock.Any(), gomock.Any()).Return(wealthdesk.Product{}, errors.New("down"))

	state := report.NewState()
	assert.Error(t, s.Build(context.Background(), state, []int{1}, "2024-03"))
	assert.Error(t, state.Values().Err)
}

func TestService_ClientProductIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := mocks.NewMockAPI(ctrl)
	s := report.NewService(m, nil)

	m.EXPECT().Products(gomock.Any(), 4).Return([]wealthdesk.Product{{ID: 10}, {ID: 12}}, nil)
	ids, err := s.ClientProductIDs(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 12}, ids)

	boom := &api.Error{Status: 404}
	m.EXPECT().Products(gomock.Any(), 5).Return(nil, boom)
	_, err = s.ClientProductIDs(context.Background(), 5)
	assert.Same(t, boom, err)
}

func TestState_ValuesAreCopies(t *testing.T) {
	state := report.NewState()
	state.SetIRR(1, ptr(2.0))
	v := state.Values()
	v.IRRs[1] = nil
	assert.NotNil(t, state.Values().IRRs[1])
}

func TestFormatter_WriteSummary(t *testing.T) {
	f := report.NewFormatter(format.Options{})
	v := report.Values{
		Products: products(),
		IRRs:     map[int]*float64{1: ptr(5.234)},
		Total:    ptr(-1.5),
	}
	var buf bytes.Buffer
	require.NoError(t, f.WriteSummary(&buf, v))
	out := buf.String()
	assert.Contains(t, out, "| Pension |")
	assert.Contains(t, out, "£120,000")
	assert.Contains(t, out, "| Total |")
	assert.Contains(t, out, "£150,000")
	assert.Contains(t, out, "5%")
	assert.Contains(t, out, "-2%")

	assert.Equal(t, "£150,000", f.Total(products()))
	assert.Equal(t, format.Placeholder, f.IRR(nil))
}

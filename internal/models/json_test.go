package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalAuction_Variants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, a AuctionRecord)
	}{
		{
			name:  "scrap",
			input: `{"id":"a1","auction_category":"scrap","scrap_info":{"quantity":"1.5","unit":"ton","weight":1500}}`,
			check: func(t *testing.T, a AuctionRecord) {
				d, ok := a.Details.(*ScrapDetails)
				require.True(t, ok)
				require.True(t, decimal.RequireFromString("1.5").Equal(d.Quantity))
				require.Equal(t, "ton", d.Unit)
				require.NotNil(t, d.Weight)
				require.True(t, decimal.NewFromInt(1500).Equal(*d.Weight))
			},
		},
		{
			name:  "machinery",
			input: `{"id":"a2","auction_category":"machinery","machinery_info":{"manufacturer":"Doosan","model_name":"DX225","quantity":2}}`,
			check: func(t *testing.T, a AuctionRecord) {
				d, ok := a.Details.(*MachineryDetails)
				require.True(t, ok)
				require.Equal(t, "Doosan", d.Manufacturer)
				require.Equal(t, 2, d.Quantity)
			},
		},
		{
			name:  "demolition_nested_type",
			input: `{"id":"a3","transaction_type":"normal","auction_category":"demolition","demolition_info":{"transaction_type":"urgent","area":330}}`,
			check: func(t *testing.T, a AuctionRecord) {
				d, ok := a.Details.(*DemolitionDetails)
				require.True(t, ok)
				require.Equal(t, TransactionUrgent, d.TransactionType)
				require.Equal(t, TransactionNormal, a.TransactionType)
			},
		},
		{
			name:  "materials_missing_info",
			input: `{"id":"a4","auction_category":"materials"}`,
			check: func(t *testing.T, a AuctionRecord) {
				d, ok := a.Details.(*MaterialsDetails)
				require.True(t, ok)
				require.True(t, d.Quantity.IsZero())
			},
		},
		{
			name:  "mismatched_info_is_ignored",
			input: `{"id":"a5","auction_category":"scrap","machinery_info":{"manufacturer":"Volvo"}}`,
			check: func(t *testing.T, a AuctionRecord) {
				_, ok := a.Details.(*ScrapDetails)
				require.True(t, ok)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var a AuctionRecord
			require.NoError(t, json.Unmarshal([]byte(tc.input), &a))
			tc.check(t, a)
		})
	}
}

func TestUnmarshalAuction_Defaults(t *testing.T) {
	var a AuctionRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"a1","auction_category":"scrap"}`), &a))

	require.Equal(t, "a1", a.ID)
	require.Zero(t, a.StartingPrice)
	require.Nil(t, a.CurrentBid)
	require.Zero(t, a.BidderCount)
	require.True(t, a.EndTime.IsZero())
	require.NotNil(t, a.Bids)
	require.Empty(t, a.Bids)
	require.NotNil(t, a.Photos)
	require.Empty(t, a.Photos)
}

func TestUnmarshalAuction_UnknownCategory(t *testing.T) {
	for _, input := range []string{
		`{"id":"a1","auction_category":"furniture"}`,
		`{"id":"a1"}`,
	} {
		var a AuctionRecord
		err := json.Unmarshal([]byte(input), &a)
		require.ErrorIs(t, err, auctionerrors.ErrUnknownCategory)
	}
}

func TestMarshalAuction_RowShape(t *testing.T) {
	bid := int64(120000)
	a := AuctionRecord{
		ID:              "a1",
		Title:           "구리 스크랩",
		TransactionType: TransactionNormal,
		CurrentBid:      &bid,
		EndTime:         time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
		Details:         &DemolitionDetails{TransactionType: TransactionUrgent, AreaUnit: "m²"},
	}

	data, err := json.Marshal(a)
	require.NoError(t, err)

	var row map[string]any
	require.NoError(t, json.Unmarshal(data, &row))
	require.Equal(t, "demolition", row["auction_category"])
	require.Contains(t, row, "demolition_info")
	require.NotContains(t, row, "scrap_info")
	require.Equal(t, []any{}, row["bids"])
	require.Equal(t, []any{}, row["photos"])
	require.EqualValues(t, 120000, row["current_bid"])

	var back AuctionRecord
	require.NoError(t, json.Unmarshal(data, &back))
	d, ok := back.Details.(*DemolitionDetails)
	require.True(t, ok)
	require.Equal(t, TransactionUrgent, d.TransactionType)
	require.Equal(t, "m²", d.AreaUnit)
	require.True(t, a.EndTime.Equal(back.EndTime))
}

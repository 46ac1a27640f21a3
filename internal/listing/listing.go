// Package listing filters, orders and pages auction records for list views.
package listing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/classify"
	"github.com/she110ff/metalcat-sub002/internal/models"
	"github.com/she110ff/metalcat-sub002/internal/timing"
)

// Filter is a conjunction of optional predicates. Zero-valued fields match everything.
type Filter struct {
	Status          models.Status
	ProductTypeID   string
	TransactionType models.TransactionType
	Category        models.Category
	Address         string
	ApprovalStatus  models.ApprovalStatus
}

// SortKey names the field a list is ordered by
type SortKey string

const (
	SortEndTime      SortKey = "end_time"
	SortCurrentBid   SortKey = "current_bid"
	SortBidders      SortKey = "bidders"
	SortCreatedAt    SortKey = "created_at"
	SortViewCount    SortKey = "view_count"
	SortPricePerUnit SortKey = "price_per_unit"
)

// Sort orders a list. An empty Key keeps the input order.
type Sort struct {
	Key        SortKey
	Descending bool
}

// Page selects a window of a list. Limit <= 0 means no limit.
type Page struct {
	Offset int
	Limit  int
}

// ParseSortKey validates a sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "", SortEndTime, SortCurrentBid, SortBidders, SortCreatedAt, SortViewCount, SortPricePerUnit:
		return k, nil
	}
	return "", fmt.Errorf("parse sort key %q: %w", s, auctionerrors.ErrInvalidSortKey)
}

// Match reports whether a satisfies every predicate of f at now.
func (f Filter) Match(a models.AuctionRecord, now time.Time) bool {
	if f.Status != "" && timing.DeriveStatus(a, now) != f.Status {
		return false
	}
	if f.ProductTypeID != "" && a.ProductTypeID != f.ProductTypeID {
		return false
	}
	if f.TransactionType != "" && classify.EffectiveTransactionType(a) != f.TransactionType {
		return false
	}
	if f.Category != "" {
		c, err := classify.Classify(a)
		if err != nil || c != f.Category {
			return false
		}
	}
	if f.ApprovalStatus != "" && a.ApprovalStatus != f.ApprovalStatus {
		return false
	}
	if f.Address != "" && !matchAddress(a.Address, f.Address) {
		return false
	}
	return true
}

func matchAddress(addr models.Address, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(addr.City), q) ||
		strings.Contains(strings.ToLower(addr.District), q)
}

// Apply filters and orders records into a new slice. The sort is stable, so
// records with equal keys keep their input order.
func Apply(records []models.AuctionRecord, f Filter, s Sort, now time.Time) ([]models.AuctionRecord, error) {
	key, err := sortValue(s.Key)
	if err != nil {
		return nil, err
	}

	out := make([]models.AuctionRecord, 0, len(records))
	for _, a := range records {
		if f.Match(a, now) {
			out = append(out, a)
		}
	}

	if key != nil {
		slices.SortStableFunc(out, func(a, b models.AuctionRecord) int {
			c := cmp.Compare(key(a), key(b))
			if s.Descending {
				return -c
			}
			return c
		})
	}
	return out, nil
}

// Paginate returns the records selected by p.
func Paginate(records []models.AuctionRecord, p Page) []models.AuctionRecord {
	start := max(p.Offset, 0)
	if start >= len(records) {
		return []models.AuctionRecord{}
	}
	end := len(records)
	if p.Limit > 0 && start+p.Limit < end {
		end = start + p.Limit
	}
	return records[start:end]
}

// sortValue maps a key to an int64 projection of the record. Missing numbers
// project to 0 so that such records are ordered, not dropped.
func sortValue(k SortKey) (func(models.AuctionRecord) int64, error) {
	switch k {
	case "":
		return nil, nil
	case SortEndTime:
		return func(a models.AuctionRecord) int64 { return unixOrZero(a.EndTime) }, nil
	case SortCreatedAt:
		return func(a models.AuctionRecord) int64 { return unixOrZero(a.CreatedAt) }, nil
	case SortCurrentBid:
		return func(a models.AuctionRecord) int64 { return deref(a.CurrentBid) }, nil
	case SortPricePerUnit:
		return func(a models.AuctionRecord) int64 { return deref(a.PricePerUnit) }, nil
	case SortBidders:
		return func(a models.AuctionRecord) int64 { return int64(a.BidderCount) }, nil
	case SortViewCount:
		return func(a models.AuctionRecord) int64 { return int64(a.ViewCount) }, nil
	}
	return nil, fmt.Errorf("sort by %q: %w", k, auctionerrors.ErrInvalidSortKey)
}

func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

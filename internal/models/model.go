package models

import (
	"strings"
	"time"
)

// Category is the auction category tag. It is derived from the populated Details variant.
type Category string

const (
	CategoryScrap      Category = "scrap"
	CategoryMachinery  Category = "machinery"
	CategoryMaterials  Category = "materials"
	CategoryDemolition Category = "demolition"
)

// Categories lists every known category in display order.
var Categories = []Category{CategoryScrap, CategoryMachinery, CategoryMaterials, CategoryDemolition}

// TransactionType decides the duration policy of an auction
type TransactionType string

const (
	TransactionNormal TransactionType = "normal"
	TransactionUrgent TransactionType = "urgent"
)

// Status is the bidding status of an auction. It is always recomputed from EndTime.
type Status string

const (
	StatusActive Status = "active"
	StatusEnding Status = "ending"
	StatusEnded  Status = "ended"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusEnding, StatusEnded:
		return true
	}
	return false
}

// ApprovalStatus is the moderation gate managed outside of this service.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending_approval"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalHidden   ApprovalStatus = "hidden"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Valid reports whether a is one of the known approval states.
func (a ApprovalStatus) Valid() bool {
	switch a {
	case ApprovalPending, ApprovalApproved, ApprovalHidden, ApprovalRejected:
		return true
	}
	return false
}

// Outcome classifies an auction that is over.
type Outcome string

const (
	OutcomeSuccessful Outcome = "successful"
	OutcomeFailed     Outcome = "failed"
	OutcomeCancelled  Outcome = "cancelled"
)

// Locale selects the language of presentation strings.
type Locale string

const (
	LocaleKO Locale = "ko"
	LocaleEN Locale = "en"
)

// ParseLocale maps a config value to a Locale, defaulting to Korean.
func ParseLocale(s string) Locale {
	if strings.EqualFold(strings.TrimSpace(s), string(LocaleEN)) {
		return LocaleEN
	}
	return LocaleKO
}

// Address is the pickup / site location of an auction
type Address struct {
	City     string `json:"city"`
	District string `json:"district"`
	Detail   string `json:"detail"`
}

// AuctionRecord is one auction as read from the backend.
// The category-specific payload lives in Details; see details.go.
type AuctionRecord struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	TransactionType TransactionType `json:"transaction_type"`
	ProductTypeID   string          `json:"product_type_id"`
	StartingPrice   int64           `json:"starting_price"`
	CurrentBid      *int64          `json:"current_bid"`
	PricePerUnit    *int64          `json:"price_per_unit,omitempty"`
	Status          Status          `json:"status"`
	ApprovalStatus  ApprovalStatus  `json:"approval_status"`
	Cancelled       bool            `json:"cancelled"`
	EndTime         time.Time       `json:"end_time"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	BidderCount     int             `json:"bidder_count"`
	ViewCount       int             `json:"view_count"`
	UserID          string          `json:"user_id"`
	SellerName      string          `json:"seller_name"`
	Address         Address         `json:"address"`
	Details         Details         `json:"-"`
	Bids            []BidRecord     `json:"bids"`
	Photos          []PhotoRecord   `json:"photos"`
}

// BidRecord is a single bid. Bids are append-only and never mutated.
type BidRecord struct {
	ID           string    `json:"id"`
	AuctionID    string    `json:"auction_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Amount       int64     `json:"amount"`
	PricePerUnit *int64    `json:"price_per_unit,omitempty"`
	BidTime      time.Time `json:"bid_time"`
}

// PhotoRecord is an uploaded auction photo
type PhotoRecord struct {
	ID               string `json:"id"`
	URL              string `json:"url"`
	Position         int    `json:"position"`
	IsRepresentative bool   `json:"is_representative"`
}

// Unknown is the placeholder shown for missing text values.
func (l Locale) Unknown() string {
	if l == LocaleEN {
		return "unknown"
	}
	return "미상"
}

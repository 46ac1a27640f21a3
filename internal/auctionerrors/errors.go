package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrAuctionNotFound = errors.New("auction not found")
	ErrNoBids          = errors.New("no bids found for auction")
	ErrUserNoBids      = errors.New("user has not placed any bids")
)

// Derivation errors raised by the pure auction packages
var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrAuctionNotEnded        = errors.New("auction has not ended")
	ErrUnknownCategory        = errors.New("unknown auction category")
	ErrInvalidSortKey         = errors.New("invalid sort key")
)

// business logic errors
var (
	ErrInvalidAuction = errors.New("invalid auction")
	ErrInvalidBid     = errors.New("invalid bid")
	ErrBidTooLow      = errors.New("bid amount too low")
	ErrAuctionClosed  = errors.New("auction is not open for bidding")
)

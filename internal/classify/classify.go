// Package classify resolves the category of an auction record and narrows it
// to the category-specific payload.
package classify

import (
	"fmt"
	"strings"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
	"github.com/she110ff/metalcat-sub002/internal/models"
)

// Classify returns the category of the record.
func Classify(a models.AuctionRecord) (models.Category, error) {
	switch d := a.Details.(type) {
	case *models.ScrapDetails:
		if d != nil {
			return models.CategoryScrap, nil
		}
	case *models.MachineryDetails:
		if d != nil {
			return models.CategoryMachinery, nil
		}
	case *models.MaterialsDetails:
		if d != nil {
			return models.CategoryMaterials, nil
		}
	case *models.DemolitionDetails:
		if d != nil {
			return models.CategoryDemolition, nil
		}
	}
	return "", fmt.Errorf("classify auction %q: %w", a.ID, auctionerrors.ErrUnknownCategory)
}

// ParseCategory validates a category tag.
func ParseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := models.NewDetails(c); !ok {
		return "", fmt.Errorf("parse category %q: %w", s, auctionerrors.ErrUnknownCategory)
	}
	return c, nil
}

// ParseTransactionType validates a transaction type.
func ParseTransactionType(s string) (models.TransactionType, error) {
	t := models.TransactionType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case models.TransactionNormal, models.TransactionUrgent:
		return t, nil
	}
	return "", fmt.Errorf("parse transaction type %q: %w", s, auctionerrors.ErrInvalidTransactionType)
}

// AsScrap returns the scrap payload of a, if a is a scrap auction.
func AsScrap(a models.AuctionRecord) (*models.ScrapDetails, bool) {
	d, ok := a.Details.(*models.ScrapDetails)
	return d, ok && d != nil
}

// AsMachinery returns the machinery payload of a, if a is a machinery auction.
func AsMachinery(a models.AuctionRecord) (*models.MachineryDetails, bool) {
	d, ok := a.Details.(*models.MachineryDetails)
	return d, ok && d != nil
}

// AsMaterials returns the materials payload of a, if a is a materials auction.
func AsMaterials(a models.AuctionRecord) (*models.MaterialsDetails, bool) {
	d, ok := a.Details.(*models.MaterialsDetails)
	return d, ok && d != nil
}

// AsDemolition returns the demolition payload of a, if a is a demolition auction.
func AsDemolition(a models.AuctionRecord) (*models.DemolitionDetails, bool) {
	d, ok := a.Details.(*models.DemolitionDetails)
	return d, ok && d != nil
}

// EffectiveTransactionType returns the transaction type that governs the
// auction. Demolition auctions carry it in their payload; the top-level field
// is only used when that payload leaves it empty.
func EffectiveTransactionType(a models.AuctionRecord) models.TransactionType {
	if d, ok := AsDemolition(a); ok && d.TransactionType != "" {
		return d.TransactionType
	}
	return a.TransactionType
}

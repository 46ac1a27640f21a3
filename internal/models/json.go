package models

import (
	"encoding/json"
	"fmt"

	"github.com/she110ff/metalcat-sub002/internal/auctionerrors"
)

// MarshalJSON writes the record in the backend row shape: the category tag in
// auction_category and the payload under its <category>_info key.
func (a AuctionRecord) MarshalJSON() ([]byte, error) {
	type alias AuctionRecord
	wire := struct {
		alias
		Category       Category           `json:"auction_category"`
		ScrapInfo      *ScrapDetails      `json:"scrap_info,omitempty"`
		MachineryInfo  *MachineryDetails  `json:"machinery_info,omitempty"`
		MaterialsInfo  *MaterialsDetails  `json:"materials_info,omitempty"`
		DemolitionInfo *DemolitionDetails `json:"demolition_info,omitempty"`
	}{alias: alias(a)}

	switch d := a.Details.(type) {
	case *ScrapDetails:
		wire.Category, wire.ScrapInfo = CategoryScrap, d
	case *MachineryDetails:
		wire.Category, wire.MachineryInfo = CategoryMachinery, d
	case *MaterialsDetails:
		wire.Category, wire.MaterialsInfo = CategoryMaterials, d
	case *DemolitionDetails:
		wire.Category, wire.DemolitionInfo = CategoryDemolition, d
	}

	if wire.Bids == nil {
		wire.Bids = []BidRecord{}
	}
	if wire.Photos == nil {
		wire.Photos = []PhotoRecord{}
	}

	return json.Marshal(wire)
}

// UnmarshalJSON reads a backend row. Missing nested info objects become empty
// payloads and missing collections become empty slices; an unknown category
// tag is rejected.
func (a *AuctionRecord) UnmarshalJSON(data []byte) error {
	type alias AuctionRecord
	wire := struct {
		*alias
		Category       Category           `json:"auction_category"`
		ScrapInfo      *ScrapDetails      `json:"scrap_info"`
		MachineryInfo  *MachineryDetails  `json:"machinery_info"`
		MaterialsInfo  *MaterialsDetails  `json:"materials_info"`
		DemolitionInfo *DemolitionDetails `json:"demolition_info"`
	}{alias: (*alias)(a)}

	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	details, ok := NewDetails(wire.Category)
	if !ok {
		return fmt.Errorf("decode auction %q: %w: %q", a.ID, auctionerrors.ErrUnknownCategory, wire.Category)
	}
	switch {
	case wire.ScrapInfo != nil && wire.Category == CategoryScrap:
		details = wire.ScrapInfo
	case wire.MachineryInfo != nil && wire.Category == CategoryMachinery:
		details = wire.MachineryInfo
	case wire.MaterialsInfo != nil && wire.Category == CategoryMaterials:
		details = wire.MaterialsInfo
	case wire.DemolitionInfo != nil && wire.Category == CategoryDemolition:
		details = wire.DemolitionInfo
	}
	a.Details = details

	if a.Bids == nil {
		a.Bids = []BidRecord{}
	}
	if a.Photos == nil {
		a.Photos = []PhotoRecord{}
	}
	return nil
}

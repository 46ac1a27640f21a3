package models

import "github.com/shopspring/decimal"

// Details is the closed set of category payloads. Only the types in this
// file implement it, so a type switch over Details covers every category.
type Details interface {
	Category() Category
	sealed()
}

// ScrapDetails is the payload of a scrap metal auction
type ScrapDetails struct {
	Quantity decimal.Decimal  `json:"quantity"`
	Unit     string           `json:"unit"`
	Weight   *decimal.Decimal `json:"weight,omitempty"`
}

// MachineryDetails is the payload of a used machinery auction
type MachineryDetails struct {
	Manufacturer      string `json:"manufacturer"`
	ModelName         string `json:"model_name"`
	ManufacturingDate string `json:"manufacturing_date"`
	Quantity          int    `json:"quantity"`
}

// MaterialsDetails is the payload of a used materials auction
type MaterialsDetails struct {
	Quantity decimal.Decimal  `json:"quantity"`
	Unit     string           `json:"unit"`
	Weight   *decimal.Decimal `json:"weight,omitempty"`
}

// DemolitionDetails is the payload of a demolition work auction.
// TransactionType here takes precedence over the top-level field.
type DemolitionDetails struct {
	TransactionType TransactionType `json:"transaction_type"`
	Area            decimal.Decimal `json:"area"`
	AreaUnit        string          `json:"area_unit"`
	BuildingPurpose string          `json:"building_purpose"`
	StructureType   string          `json:"structure_type"`
	FloorCount      int             `json:"floor_count"`
}

func (*ScrapDetails) Category() Category      { return CategoryScrap }
func (*MachineryDetails) Category() Category  { return CategoryMachinery }
func (*MaterialsDetails) Category() Category  { return CategoryMaterials }
func (*DemolitionDetails) Category() Category { return CategoryDemolition }

func (*ScrapDetails) sealed()      {}
func (*MachineryDetails) sealed()  {}
func (*MaterialsDetails) sealed()  {}
func (*DemolitionDetails) sealed() {}

// NewDetails returns an empty payload for the given category.
func NewDetails(c Category) (Details, bool) {
	switch c {
	case CategoryScrap:
		return &ScrapDetails{}, true
	case CategoryMachinery:
		return &MachineryDetails{}, true
	case CategoryMaterials:
		return &MaterialsDetails{}, true
	case CategoryDemolition:
		return &DemolitionDetails{}, true
	}
	return nil, false
}

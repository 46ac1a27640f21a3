package classify

import (
	"fmt"
	"strings"

	"github.com/she110ff/metalcat-sub002/internal/models"
)

var labels = map[models.Locale]map[models.Category]string{
	models.LocaleKO: {
		models.CategoryScrap:      "고철",
		models.CategoryMachinery:  "중고기계",
		models.CategoryMaterials:  "중고자재",
		models.CategoryDemolition: "철거",
	},
	models.LocaleEN: {
		models.CategoryScrap:      "Scrap",
		models.CategoryMachinery:  "Machinery",
		models.CategoryMaterials:  "Materials",
		models.CategoryDemolition: "Demolition",
	},
}

// Label returns the display name of a category.
func Label(c models.Category, locale models.Locale) string {
	if l, ok := labels[locale][c]; ok {
		return l
	}
	return locale.Unknown()
}

// Describe summarises the category payload in one line.
// Missing values are replaced with the locale's unknown placeholder.
func Describe(a models.AuctionRecord, locale models.Locale) string {
	unknown := locale.Unknown()
	or := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return unknown
		}
		return s
	}

	switch d := a.Details.(type) {
	case *models.ScrapDetails:
		if d == nil {
			break
		}
		s := fmt.Sprintf("%s %s", d.Quantity.String(), or(d.Unit))
		if d.Weight != nil {
			s += fmt.Sprintf(" / %skg", d.Weight.String())
		}
		return s
	case *models.MaterialsDetails:
		if d == nil {
			break
		}
		s := fmt.Sprintf("%s %s", d.Quantity.String(), or(d.Unit))
		if d.Weight != nil {
			s += fmt.Sprintf(" / %skg", d.Weight.String())
		}
		return s
	case *models.MachineryDetails:
		if d == nil {
			break
		}
		year := unknown
		if len(d.ManufacturingDate) >= 4 {
			year = d.ManufacturingDate[:4]
		}
		return fmt.Sprintf("%s %s (%s)", or(d.Manufacturer), or(d.ModelName), year)
	case *models.DemolitionDetails:
		if d == nil {
			break
		}
		return fmt.Sprintf("%s%s · %s", d.Area.String(), or(d.AreaUnit), or(d.StructureType))
	}
	return unknown
}

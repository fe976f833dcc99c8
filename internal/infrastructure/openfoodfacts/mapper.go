package openfoodfacts

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/eatwise/backend/internal/domain"
)

// productResponse is the wire shape of the single-product endpoint
type productResponse struct {
	Status  int     `json:"status"`
	Code    string  `json:"code"`
	Product product `json:"product"`
}

// searchResponse is the wire shape of the text search endpoint
type searchResponse struct {
	Count    int       `json:"count"`
	Products []product `json:"products"`
}

type product struct {
	Code            string     `json:"code"`
	ProductName     string     `json:"product_name"`
	Brands          string     `json:"brands"`
	Categories      string     `json:"categories"`
	ImageFrontURL   string     `json:"image_front_url"`
	ServingQuantity flexFloat  `json:"serving_quantity"`
	ServingSizeUnit string     `json:"serving_quantity_unit"`
	Nutriments      nutriments `json:"nutriments"`
}

// nutriments carries the per-100g macro values
type nutriments struct {
	EnergyKcal flexFloat `json:"energy-kcal_100g"`
	Proteins   flexFloat `json:"proteins_100g"`
	Carbs      flexFloat `json:"carbohydrates_100g"`
	Fat        flexFloat `json:"fat_100g"`
	Fiber      flexFloat `json:"fiber_100g"`
}

// flexFloat tolerates the API returning numeric fields either as
// numbers or as quoted strings.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// Tolerate junk values rather than failing the whole payload
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

var _ json.Unmarshaler = (*flexFloat)(nil)

// mapProduct converts an Open Food Facts product to the normalized
// external record consumed by the search engine.
func mapProduct(p product) domain.ExternalFoodRecord {
	servingSize := float64(p.ServingQuantity)
	servingUnit := p.ServingSizeUnit
	if servingSize <= 0 {
		servingSize = 100
		servingUnit = "g"
	}
	if servingUnit == "" {
		servingUnit = "g"
	}

	return domain.ExternalFoodRecord{
		Barcode:     p.Code,
		Name:        strings.TrimSpace(p.ProductName),
		Brand:       firstSegment(p.Brands),
		Calories:    float64(p.Nutriments.EnergyKcal),
		Protein:     float64(p.Nutriments.Proteins),
		Carbs:       float64(p.Nutriments.Carbs),
		Fats:        float64(p.Nutriments.Fat),
		Fiber:       float64(p.Nutriments.Fiber),
		ServingSize: servingSize,
		ServingUnit: servingUnit,
		Category:    firstSegment(p.Categories),
		ImageURL:    p.ImageFrontURL,
	}
}

// firstSegment returns the first entry of a comma-separated list field
// ("Danone, Activia" -> "Danone").
func firstSegment(s string) string {
	if idx := strings.Index(s, ","); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

package domain

import "time"

// Source tags recording where a catalog entry came from
const (
	SourceManual   = "manual"   // submitted by a user through the app
	SourceExternal = "external" // imported from the external food database
	SourceDefault  = "default"  // shipped with the catalog
)

// FoodItem represents a single entry in the local food catalog.
// Macro fields are per serving.
type FoodItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	Barcode     string    `json:"barcode,omitempty"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Carbs       float64   `json:"carbs"`
	Fats        float64   `json:"fats"`
	Fiber       float64   `json:"fiber,omitempty"`
	Sugar       float64   `json:"sugar,omitempty"`
	ServingSize float64   `json:"servingSize"`
	ServingUnit string    `json:"servingUnit"`
	Category    string    `json:"category,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Verified    bool      `json:"verified"`
	CreatedBy   string    `json:"createdBy,omitempty"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ExternalFoodRecord is the normalized shape returned by the external
// food database. It is never persisted as-is; imports map it into a
// FoodItem.
type ExternalFoodRecord struct {
	Barcode     string  `json:"barcode"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand,omitempty"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fats        float64 `json:"fats"`
	Fiber       float64 `json:"fiber,omitempty"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

// NewFoodInput carries the fields for a manual catalog submission.
type NewFoodInput struct {
	Name        string  `json:"name" binding:"required"`
	Brand       string  `json:"brand,omitempty"`
	Barcode     string  `json:"barcode,omitempty"`
	Calories    float64 `json:"calories" binding:"gte=0"`
	Protein     float64 `json:"protein" binding:"gte=0"`
	Carbs       float64 `json:"carbs" binding:"gte=0"`
	Fats        float64 `json:"fats" binding:"gte=0"`
	Fiber       float64 `json:"fiber,omitempty"`
	Sugar       float64 `json:"sugar,omitempty"`
	ServingSize float64 `json:"servingSize"`
	ServingUnit string  `json:"servingUnit"`
	Category    string  `json:"category,omitempty"`
	CreatedBy   string  `json:"createdBy,omitempty"`
}

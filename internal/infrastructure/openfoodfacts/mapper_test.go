package openfoodfacts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain number", `12.5`, 12.5},
		{"quoted number", `"12.5"`, 12.5},
		{"integer", `343`, 343},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
		{"junk string", `"n/a"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f flexFloat
			require.NoError(t, json.Unmarshal([]byte(tt.in), &f))
			assert.InDelta(t, tt.want, float64(f), 0.0001)
		})
	}
}

func TestMapProduct(t *testing.T) {
	t.Run("maps all fields", func(t *testing.T) {
		p := product{
			Code:            "4820000000017",
			ProductName:     " Гречка органічна ",
			Brands:          "Жменька, Інший бренд",
			Categories:      "Крупи, Гречані крупи",
			ImageFrontURL:   "https://images.example/front.jpg",
			ServingQuantity: 50,
			ServingSizeUnit: "g",
			Nutriments: nutriments{
				EnergyKcal: 343,
				Proteins:   13.2,
				Carbs:      71.5,
				Fat:        3.4,
				Fiber:      10,
			},
		}

		rec := mapProduct(p)
		assert.Equal(t, "4820000000017", rec.Barcode)
		assert.Equal(t, "Гречка органічна", rec.Name)
		assert.Equal(t, "Жменька", rec.Brand)
		assert.Equal(t, "Крупи", rec.Category)
		assert.Equal(t, "https://images.example/front.jpg", rec.ImageURL)
		assert.InDelta(t, 50.0, rec.ServingSize, 0.001)
		assert.Equal(t, "g", rec.ServingUnit)
		assert.InDelta(t, 343.0, rec.Calories, 0.001)
		assert.InDelta(t, 13.2, rec.Protein, 0.001)
		assert.InDelta(t, 71.5, rec.Carbs, 0.001)
		assert.InDelta(t, 3.4, rec.Fats, 0.001)
		assert.InDelta(t, 10.0, rec.Fiber, 0.001)
	})

	t.Run("defaults missing serving to 100 g", func(t *testing.T) {
		rec := mapProduct(product{Code: "1", ProductName: "Молоко"})
		assert.InDelta(t, 100.0, rec.ServingSize, 0.001)
		assert.Equal(t, "g", rec.ServingUnit)
	})

	t.Run("takes the first comma-separated brand", func(t *testing.T) {
		rec := mapProduct(product{ProductName: "Йогурт", Brands: "Danone, Activia"})
		assert.Equal(t, "Danone", rec.Brand)
	})
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yakkt/campervan-configurator/internal/model"
)

func TestCalculateSavings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		discountable float64
		wantPct      float64
		wantAmount   float64
	}{
		{
			name:         "zero",
			discountable: 0,
			wantPct:      0,
			wantAmount:   0,
		},
		{
			name:         "just below threshold",
			discountable: 1749.99,
			wantPct:      0,
			wantAmount:   0,
		},
		{
			name:         "exactly at threshold",
			discountable: 1750,
			wantPct:      1,
			wantAmount:   18, // round(17.5)
		},
		{
			name:         "just below second tier",
			discountable: 1949.99,
			wantPct:      1,
			wantAmount:   19,
		},
		{
			name:         "second tier",
			discountable: 1950,
			wantPct:      2,
			wantAmount:   39,
		},
		{
			name:         "third tier",
			discountable: 2150,
			wantPct:      3,
			wantAmount:   65, // round(64.5)
		},
		{
			name:         "last uncapped tier",
			discountable: 5149.99,
			wantPct:      17,
			wantAmount:   875, // round(875.4983)
		},
		{
			name:         "cap reached",
			discountable: 5150,
			wantPct:      17.5,
			wantAmount:   901, // round(901.25)
		},
		{
			name:         "far beyond cap",
			discountable: 10000,
			wantPct:      17.5,
			wantAmount:   1750,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pct, amount := calculateSavings(tt.discountable)

			assert.InDelta(t, tt.wantPct, pct, 1e-9)
			assert.InDelta(t, tt.wantAmount, amount, 1e-9)
		})
	}
}

func pricingCatalog() *model.Catalog {
	return model.NewCatalog(
		[]model.Chassis{
			{ID: "mwb-crafter", Name: "MWB Crafter", BasePrice: 0},
			{ID: "lwb-crafter", Name: "LWB Crafter", BasePrice: 500},
		},
		[]model.Option{
			{ID: "scenic-window", Name: "Scenic Window", Price: 1850, Category: model.CategoryWindows},
			{ID: "small-window", Name: "Small Window", Price: 300, Category: model.CategoryWindows},
			{ID: "flares", Name: "Flares", Price: 950, Category: model.CategoryExteriorAccessories},
			{ID: "fiamma-awning", Name: "Fiamma Awning", Price: 700, Category: model.CategoryExteriorAccessories},
		},
	)
}

func TestCalculatePrice(t *testing.T) {
	t.Parallel()

	cat := pricingCatalog()

	newSelection := func(chassisID string, optionIDs ...string) model.Selection {
		sel := model.NewSelection()
		sel.ChassisID = chassisID
		for _, id := range optionIDs {
			sel.Add(id)
		}
		return sel
	}

	tests := []struct {
		name string
		sel  model.Selection
		want model.PriceData
	}{
		{
			name: "no chassis means everything is zero",
			sel:  newSelection("", "scenic-window"),
			want: model.ZeroPriceData(),
		},
		{
			name: "unknown chassis means everything is zero",
			sel:  newSelection("t5-transporter", "scenic-window"),
			want: model.ZeroPriceData(),
		},
		{
			name: "chassis only below threshold",
			sel:  newSelection("lwb-crafter"),
			want: model.PriceData{
				ChassisPrice:      500,
				DiscountablePrice: 500,
				AddOnPrices:       map[string]float64{},
				TotalPrice:        500,
				FinalPrice:        500,
			},
		},
		{
			name: "excluded option stays out of the discount base",
			sel:  newSelection("mwb-crafter", "flares"),
			want: model.PriceData{
				NonDiscountablePrice: 950,
				AddOnPrices:          map[string]float64{"flares": 950},
				TotalPrice:           950,
				FinalPrice:           950,
			},
		},
		{
			name: "mixed selection discounts only the eligible part",
			sel:  newSelection("mwb-crafter", "flares", "scenic-window"),
			want: model.PriceData{
				DiscountablePrice:    1850,
				NonDiscountablePrice: 950,
				AddOnPrices: map[string]float64{
					"flares":        950,
					"scenic-window": 1850,
				},
				DiscountPercentage: 1,
				DiscountAmount:     19, // round(18.5)
				TotalPrice:         2800,
				FinalPrice:         2781,
			},
		},
		{
			name: "chassis base price feeds the discount base",
			sel:  newSelection("lwb-crafter", "scenic-window"),
			want: model.PriceData{
				ChassisPrice:       500,
				DiscountablePrice:  2350,
				AddOnPrices:        map[string]float64{"scenic-window": 1850},
				DiscountPercentage: 4, // floor(600/200)+1
				DiscountAmount:     94,
				TotalPrice:         2350,
				FinalPrice:         2256,
			},
		},
		{
			name: "unknown option id contributes nothing",
			sel:  newSelection("lwb-crafter", "ghost-option"),
			want: model.PriceData{
				ChassisPrice:      500,
				DiscountablePrice: 500,
				AddOnPrices:       map[string]float64{},
				TotalPrice:        500,
				FinalPrice:        500,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := calculatePrice(cat, tt.sel)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculatePriceIsMonotonicInEligibleOptions(t *testing.T) {
	t.Parallel()

	cat := pricingCatalog()

	sel := model.NewSelection()
	sel.ChassisID = "lwb-crafter"

	base := calculatePrice(cat, sel)

	sel.Add("scenic-window")
	withOption := calculatePrice(cat, sel)

	require.Greater(t, withOption.TotalPrice, base.TotalPrice)
	assert.Greater(t, withOption.FinalPrice, base.FinalPrice)
	assert.GreaterOrEqual(t, withOption.DiscountAmount, base.DiscountAmount)
}

package service

import (
	"math"

	"github.com/yakkt/campervan-configurator/internal/model"
)

// Tiered bundle discount: nothing below the threshold, then one percentage
// point per full tier step above it, capped. Only the discountable part of
// the selection feeds the tier computation.
const (
	discountThreshold  = 1750.0
	discountTierStep   = 200.0
	discountCapPercent = 17.5
)

// Items that never enter the discount base. Membership is configuration, not
// a property derived from the catalog.
var discountExcludedItems = map[string]struct{}{
	"flares":                         {},
	"front-bull-bar":                 {},
	"lazer-lights-grille":            {},
	"bravo-snorkel":                  {},
	"black-rhino-wheels":             {},
	"standard-wheels":                {},
	"fiamma-awning":                  {},
	"front-runner-wolfpack-pro-2x-l": {},
	"front-runner-wolfpack-pro-2x-r": {},
	"front-runner-wolfpack-pro-1x-m": {},
}

func isExcludedFromDiscount(optionID string) bool {
	_, ok := discountExcludedItems[optionID]
	return ok
}

// calculatePrice derives a full price snapshot from the selection. Without a
// chassis every field is zero. A selected id missing from the catalog
// contributes nothing and is skipped.
func calculatePrice(cat *model.Catalog, sel model.Selection) model.PriceData {
	price := model.ZeroPriceData()
	if sel.ChassisID == "" {
		return price
	}

	chassis, ok := cat.ChassisByID(sel.ChassisID)
	if !ok {
		return price
	}

	for optionID := range sel.OptionIDs {
		opt, ok := cat.OptionByID(optionID)
		if !ok {
			continue
		}

		price.AddOnPrices[optionID] = opt.Price
		if isExcludedFromDiscount(optionID) {
			price.NonDiscountablePrice += opt.Price
		} else {
			price.DiscountablePrice += opt.Price
		}
	}

	price.ChassisPrice = chassis.BasePrice
	price.DiscountablePrice += chassis.BasePrice
	price.TotalPrice = price.DiscountablePrice + price.NonDiscountablePrice

	price.DiscountPercentage, price.DiscountAmount = calculateSavings(price.DiscountablePrice)
	price.FinalPrice = price.TotalPrice - price.DiscountAmount

	return price
}

// calculateSavings maps the discountable amount onto the tier ladder. The
// discount amount is rounded exactly once, here.
func calculateSavings(discountablePrice float64) (percentage, amount float64) {
	if discountablePrice < discountThreshold {
		return 0, 0
	}

	tiers := math.Floor((discountablePrice - discountThreshold) / discountTierStep)
	percentage = math.Min(tiers+1, discountCapPercent)
	amount = math.Round(discountablePrice * percentage / 100)

	return percentage, amount
}

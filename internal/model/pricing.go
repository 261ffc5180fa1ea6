package model

// PriceData is the price snapshot derived from a selection. It is recomputed
// from scratch after every mutation and is read-only everywhere else.
type PriceData struct {
	// Base price of the selected chassis, 0 when none is selected.
	ChassisPrice float64
	// Chassis price plus the prices of discount-eligible options.
	DiscountablePrice float64
	// Sum of prices of options excluded from the discount base.
	NonDiscountablePrice float64
	// Price per selected option id.
	AddOnPrices map[string]float64
	// Bundle discount percentage applied to the discountable part.
	DiscountPercentage float64
	// Absolute discount, rounded once to a whole currency unit.
	DiscountAmount float64
	// Pre-discount sum of everything selected.
	TotalPrice float64
	// TotalPrice minus DiscountAmount.
	FinalPrice float64
}

func ZeroPriceData() PriceData {
	return PriceData{AddOnPrices: make(map[string]float64)}
}

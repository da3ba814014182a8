package is456

import "math"

// LoadCombination represents an IS 456 limit state of collapse combination
// Based on IS 456:2000 Table 18 - Values of partial safety factor γf
type LoadCombination struct {
	ID          string
	Description string
	// Load factors for each load type
	Dead       float64 // DL - Dead load
	Imposed    float64 // IL - Imposed (live) load
	Wind       float64 // WL - Wind load
	Earthquake float64 // EL - Earthquake load
}

// LoadCombinations lists the Table 18 collapse combinations. Lateral loads
// are reversible, so each lateral combination appears with both signs.
var LoadCombinations = []LoadCombination{
	{ID: "1", Description: "1.5(DL + IL)", Dead: 1.5, Imposed: 1.5},
	{ID: "2a", Description: "1.5(DL + WL)", Dead: 1.5, Wind: 1.5},
	{ID: "2b", Description: "1.5(DL - WL)", Dead: 1.5, Wind: -1.5},
	{ID: "3a", Description: "0.9DL + 1.5WL", Dead: 0.9, Wind: 1.5},
	{ID: "3b", Description: "0.9DL - 1.5WL", Dead: 0.9, Wind: -1.5},
	{ID: "4a", Description: "1.2(DL + IL + WL)", Dead: 1.2, Imposed: 1.2, Wind: 1.2},
	{ID: "4b", Description: "1.2(DL + IL - WL)", Dead: 1.2, Imposed: 1.2, Wind: -1.2},
	{ID: "5a", Description: "1.5(DL + EL)", Dead: 1.5, Earthquake: 1.5},
	{ID: "5b", Description: "1.5(DL - EL)", Dead: 1.5, Earthquake: -1.5},
	{ID: "6a", Description: "0.9DL + 1.5EL", Dead: 0.9, Earthquake: 1.5},
	{ID: "6b", Description: "0.9DL - 1.5EL", Dead: 0.9, Earthquake: -1.5},
	{ID: "7a", Description: "1.2(DL + IL + EL)", Dead: 1.2, Imposed: 1.2, Earthquake: 1.2},
	{ID: "7b", Description: "1.2(DL + IL - EL)", Dead: 1.2, Imposed: 1.2, Earthquake: -1.2},
}

// GravityCombinations is the single combination used for gravity-only beams
var GravityCombinations = LoadCombinations[:1]

// Actions holds unfactored actions (moments in kN-m or shears in kN) by load type
type Actions struct {
	Dead       float64
	Imposed    float64
	Wind       float64
	Earthquake float64
}

// Factored returns the factored action for the combination
func (lc LoadCombination) Factored(a Actions) float64 {
	return lc.Dead*a.Dead +
		lc.Imposed*a.Imposed +
		lc.Wind*a.Wind +
		lc.Earthquake*a.Earthquake
}

// GoverningAction finds the combination with the largest factored magnitude.
// Ties keep the earlier combination.
func GoverningAction(a Actions, combinations []LoadCombination) (float64, LoadCombination) {
	var maxAction float64
	var governing LoadCombination

	for _, combo := range combinations {
		v := math.Abs(combo.Factored(a))
		if v > maxAction {
			maxAction = v
			governing = combo
		}
	}

	return maxAction, governing
}

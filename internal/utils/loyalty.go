package utils

import "math"

// Loyalty card rules: every euro spent earns one point, and each 200 points
// unlock 20 euros of purchases.
const (
	LoyaltyPointsPerEuro   = 1
	LoyaltyRewardThreshold = 200
	LoyaltyRewardEuros     = 20
)

type LoyaltyProgress struct {
	Points    int `json:"points"`
	Rewards   int `json:"rewards"`
	Remaining int `json:"remaining"`
	Percent   int `json:"percent"`
}

// LoyaltyPoints returns the points earned by a purchase. Cents do not count.
func LoyaltyPoints(amountEuros float64) int {
	if amountEuros <= 0 {
		return 0
	}
	return int(math.Floor(amountEuros)) * LoyaltyPointsPerEuro
}

func Progress(points int) LoyaltyProgress {
	if points < 0 {
		points = 0
	}
	current := points % LoyaltyRewardThreshold
	return LoyaltyProgress{
		Points:    points,
		Rewards:   points / LoyaltyRewardThreshold,
		Remaining: LoyaltyRewardThreshold - current,
		Percent:   current * 100 / LoyaltyRewardThreshold,
	}
}

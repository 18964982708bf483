// internal/domain/nutrition/calculator.go
package nutrition

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is returned for out-of-range or unknown calculator inputs.
var ErrInvalidInput = errors.New("invalid calculator input")

// Gender for the BMR formula
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel selects the TDEE multiplier
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

// CalculateRequest represents calorie-need calculator input
type CalculateRequest struct {
	Gender   Gender        `json:"gender" binding:"required"`
	Age      int           `json:"age" binding:"required"`
	WeightKg float64       `json:"weight_kg" binding:"required"`
	HeightCm float64       `json:"height_cm" binding:"required"`
	Activity ActivityLevel `json:"activity" binding:"required"`
}

// CalorieNeed is the calculator result, in kcal per day
type CalorieNeed struct {
	BMR        int `json:"bmr"`
	TDEE       int `json:"tdee"`
	Maintain   int `json:"maintain"`
	LoseWeight int `json:"lose_weight"`
	GainWeight int `json:"gain_weight"`
}

// Calculate computes daily calorie needs using the Mifflin-St Jeor equation
// and fixed activity multipliers.
func Calculate(req CalculateRequest) (*CalorieNeed, error) {
	if req.WeightKg <= 0 || req.HeightCm <= 0 || req.Age <= 0 {
		return nil, fmt.Errorf("weight, height and age must be positive: %w", ErrInvalidInput)
	}

	var bmr float64
	switch req.Gender {
	case GenderMale:
		bmr = 10*req.WeightKg + 6.25*req.HeightCm - 5*float64(req.Age) + 5
	case GenderFemale:
		bmr = 10*req.WeightKg + 6.25*req.HeightCm - 5*float64(req.Age) - 161
	default:
		return nil, fmt.Errorf("unknown gender %q: %w", req.Gender, ErrInvalidInput)
	}

	multiplier, ok := activityMultipliers[req.Activity]
	if !ok {
		return nil, fmt.Errorf("unknown activity level %q: %w", req.Activity, ErrInvalidInput)
	}

	tdee := bmr * multiplier

	return &CalorieNeed{
		BMR:        int(math.Round(bmr)),
		TDEE:       int(math.Round(tdee)),
		Maintain:   int(math.Round(tdee)),
		LoseWeight: int(math.Round(tdee - 500)),
		GainWeight: int(math.Round(tdee + 500)),
	}, nil
}

// Package plan contains the pure attack-planning math applied to captured
// reports: castle defense bonus and troop suggestions.
package plan

import "math"

// AttackValues maps troop types to their attack power per unit.
var AttackValues = map[string]int64{
	"pikemen":       5,
	"footmen":       5,
	"archers":       7,
	"crossbowmen":   8,
	"heavy cavalry": 15,
	"knights":       20,
}

// CastleBonus returns the defensive bonus fraction granted by castles:
// sqrt(castles)/100.
func CastleBonus(castles int64) float64 {
	if castles <= 0 {
		return 0
	}
	return math.Sqrt(float64(castles)) / 100
}

// EffectiveDefense returns the defense power with the castle bonus applied,
// rounded up.
func EffectiveDefense(dp, castles int64) int64 {
	return int64(math.Ceil(float64(dp) * (1 + CastleBonus(castles))))
}

// SuggestedCount returns how many units of the given troop type are needed
// to match the defense power, rounded up. Returns 0 for unknown troop types.
func SuggestedCount(troop string, dp int64) int64 {
	value, ok := AttackValues[troop]
	if !ok || value <= 0 {
		return 0
	}
	return (dp + value - 1) / value
}

// TotalAttack sums the attack power of a troop composition. Unknown troop
// types contribute nothing.
func TotalAttack(troops map[string]int64) int64 {
	var total int64
	for name, count := range troops {
		total += AttackValues[name] * count
	}
	return total
}

// Outcome classifies an attack's prospects against a defense power.
type Outcome string

// Attack outcome classifications.
const (
	OutcomeLikelyLoss Outcome = "likely_loss"
	OutcomeLikelyWin  Outcome = "likely_win"
	OutcomeOverkill   Outcome = "overkill"
)

// Classify compares total attack power to defense power: below parity is a
// likely loss, up to double is a likely win, beyond that overkill.
func Classify(totalAttack, dp int64) Outcome {
	if dp <= 0 {
		return OutcomeOverkill
	}
	ratio := float64(totalAttack) / float64(dp)
	switch {
	case ratio < 1:
		return OutcomeLikelyLoss
	case ratio < 2:
		return OutcomeLikelyWin
	default:
		return OutcomeOverkill
	}
}

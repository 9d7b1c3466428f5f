package segment

import "math"

// travelTimeS computes one edge's contribution to total_time_s:
//
//	floor(distance/adv_speed + vertical_surcharge + 0.051)
//
// where vertical_surcharge is deltaHeightFt*ascendFatigue when the rise is
// positive, or deltaHeightFt*descendFatigue when it is negative or zero.
// The descend coefficient is applied with the sign of deltaHeightFt, so a
// descent can reduce travel time below flat-ground time if its coefficient
// is configured large enough; this is the literal source formula and is
// preserved rather than corrected.
func travelTimeS(distanceFt, deltaHeightFt int64, advSpeedFtPerS int64, ascendFatigueSPerFt, descendFatigueSPerFt float64) int64 {
	var surcharge float64
	if deltaHeightFt > 0 {
		surcharge = float64(deltaHeightFt) * ascendFatigueSPerFt
	} else {
		surcharge = float64(deltaHeightFt) * descendFatigueSPerFt
	}

	raw := float64(distanceFt)/float64(advSpeedFtPerS) + surcharge + 0.051

	return int64(math.Floor(raw))
}

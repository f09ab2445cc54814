package domain

import "time"

// Pricing for a flete, in integer Argentine pesos. Both the pre-trip
// estimate and the final price share one formula; only the duration source
// differs (gateway estimate vs wall clock). Hours always round UP: a
// 61-minute trip bills as 2 hours. That is the minimum billing granularity,
// not a rounding accident.
const (
	HourlyRateARS    int64 = 22000
	DistanceBonusARS int64 = 20000

	// Strictly greater than: exactly 30.0 km earns no bonus.
	DistanceBonusThresholdKm = 30.0
)

// BilledHours converts total minutes to billed hours, rounding up.
func BilledHours(totalMinutes int) int {
	if totalMinutes <= 0 {
		return 0
	}
	return (totalMinutes + 59) / 60
}

func distanceBonus(distanceKm float64) int64 {
	if distanceKm > DistanceBonusThresholdKm {
		return DistanceBonusARS
	}
	return 0
}

func priceFor(totalMinutes int, distanceKm float64) int64 {
	return int64(BilledHours(totalMinutes))*HourlyRateARS + distanceBonus(distanceKm)
}

// EstimatePrice is pricing rule A: computed once at request time from the
// estimation gateway's duration breakdown.
func EstimatePrice(driveMin, loadMin, unloadMin int, distanceKm float64) int64 {
	return priceFor(driveMin+loadMin+unloadMin, distanceKm)
}

// FinalPrice is pricing rule B: computed at completion from the recorded
// duration and the trip's stored distance.
func FinalPrice(finalDurationMin int, distanceKm float64) int64 {
	return priceFor(finalDurationMin, distanceKm)
}

// TripDurationMin measures elapsed trip time in whole minutes, rounded up.
func TripDurationMin(startTime, now time.Time) int {
	elapsed := now.Sub(startTime)
	if elapsed <= 0 {
		return 0
	}
	min := int(elapsed / time.Minute)
	if elapsed%time.Minute != 0 {
		min++
	}
	return min
}

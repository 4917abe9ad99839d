package entity

// LitersForMass converts gas mass in kilograms to liters.
func LitersForMass(kg float64) float64 {
	return kg * LitersPerKilogram
}

// KilogramsForLiters converts gaseous liters back to kilograms.
func KilogramsForLiters(liters float64) float64 {
	return liters / LitersPerKilogram
}

// ConsumptionLiters is the gas burned by a flame at rateLPM liters per minute
// over totalSeconds.
func ConsumptionLiters(rateLPM float64, totalSeconds int) float64 {
	return rateLPM * (float64(totalSeconds) / 60)
}

// Percentage returns part as a percentage of total, or 0 when total is 0.
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}

	return part / total * 100
}

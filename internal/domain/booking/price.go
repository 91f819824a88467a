package booking

import "github.com/HennaArtStudio/henna-booking-api/internal/models"

// TotalPrice sums prices[complexity] over the service snapshots carried
// by a booking. A snapshot whose price table has no entry for its chosen
// complexity contributes 0 rather than failing; partial data is
// tolerated. Pure function of its input.
func TotalPrice(services models.ServiceSnapshots) float64 {
	var total float64
	for _, s := range services {
		total += s.Prices[s.Complexity]
	}
	return total
}

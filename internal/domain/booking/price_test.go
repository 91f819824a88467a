package booking

import (
	"testing"

	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		name     string
		services models.ServiceSnapshots
		want     float64
	}{
		{
			name:     "no services",
			services: models.ServiceSnapshots{},
			want:     0,
		},
		{
			name: "single service medium tier",
			services: models.ServiceSnapshots{
				{
					Name:       "Hand Henna",
					Complexity: models.ComplexityMedium,
					Prices:     models.PriceTable{"Simple": 30, "Medium": 50, "Hard": 70},
				},
			},
			want: 50,
		},
		{
			name: "multiple services sum their chosen tiers",
			services: models.ServiceSnapshots{
				{
					Name:       "Hand Henna",
					Complexity: models.ComplexitySimple,
					Prices:     models.PriceTable{"Simple": 30, "Medium": 50, "Hard": 70},
				},
				{
					Name:       "Bridal Henna",
					Complexity: models.ComplexityHard,
					Prices:     models.PriceTable{"Simple": 100, "Medium": 150, "Hard": 250},
				},
			},
			want: 280,
		},
		{
			name: "missing tier counts as zero",
			services: models.ServiceSnapshots{
				{
					Name:       "Hand Henna",
					Complexity: models.ComplexityHard,
					Prices:     models.PriceTable{"Simple": 30},
				},
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalPrice(tt.services)
			if got != tt.want {
				t.Fatalf("TotalPrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The total is a function of the snapshot only. Editing the catalog the
// snapshot was copied from must not change what the booking charges.
func TestTotalPriceIgnoresCatalogEdits(t *testing.T) {
	catalog := models.PriceTable{"Simple": 30, "Medium": 50, "Hard": 70}

	snapshot := make(models.PriceTable, len(catalog))
	for k, v := range catalog {
		snapshot[k] = v
	}

	services := models.ServiceSnapshots{
		{Name: "Hand Henna", Complexity: models.ComplexityMedium, Prices: snapshot},
	}

	before := TotalPrice(services)

	catalog[models.ComplexityMedium] = 999

	if after := TotalPrice(services); after != before {
		t.Fatalf("total changed after catalog edit: before %v, after %v", before, after)
	}
	if before != 50 {
		t.Fatalf("TotalPrice() = %v, want 50", before)
	}
}

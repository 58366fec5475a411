package arttoys

import (
	"testing"

	"github.com/yourarttoy/arttoy-backend/pkg/db/models"
)

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		price, discount, want float64
	}{
		{100, 0, 100},
		{100, 25, 75},
		{19.99, 10, 17.99},
		{59.90, 33, 40.13},
		{100, 99, 1},
	}
	for _, tc := range cases {
		if got := DiscountedPrice(tc.price, tc.discount); got != tc.want {
			t.Fatalf("DiscountedPrice(%v, %v) = %v, want %v", tc.price, tc.discount, got, tc.want)
		}
	}
}

func TestToArtToyDTONeverEmitsNilSlices(t *testing.T) {
	dto := toArtToyDTO(models.ArtToy{Name: "Molly"})
	if dto.Images == nil || dto.Tags == nil {
		t.Fatal("expected empty slices, got nil")
	}
}

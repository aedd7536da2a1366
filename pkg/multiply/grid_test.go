package multiply

import "testing"

func TestGridOffset(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		columns  int
		distance float64
		expected Offset
	}{
		{"origin", 0, 6, 30.0, Offset{Lat: 0.0, Lon: 0.0}},
		{"first row, second column", 1, 6, 30.0, Offset{Lat: 0.0, Lon: 0.8120838070488875}},
		{"first row, last column", 5, 6, 30.0, Offset{Lat: 0.0, Lon: 4.060419035244437}},
		{"second row wraps", 6, 6, 30.0, Offset{Lat: 0.5, Lon: 0.0}},
		{"second row, second column", 7, 6, 30.0, Offset{Lat: 0.5, Lon: 0.8120838070488875}},
		{"third row, third column", 14, 6, 30.0, Offset{Lat: 1.0, Lon: 1.624167614097775}},
		{"reduced distance", 7, 6, 3.0, Offset{Lat: 0.05, Lon: 0.08120838070488874}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GridOffset(tt.index, tt.columns, tt.distance)
			if got != tt.expected {
				t.Errorf("Expected offset %+v, got %+v", tt.expected, got)
			}
		})
	}
}

// A non-positive column count degenerates to a single column.
func TestGridOffsetSingleColumn(t *testing.T) {
	got := GridOffset(3, 0, 30.0)
	expected := Offset{Lat: 1.5, Lon: 0.0}
	if got != expected {
		t.Errorf("Expected offset %+v, got %+v", expected, got)
	}
}

func TestGridSpacing(t *testing.T) {
	got := GridSpacing(30.0)
	expected := Offset{Lat: 0.5, Lon: 0.8120838070488875}
	if got != expected {
		t.Errorf("Expected spacing %+v, got %+v", expected, got)
	}
}

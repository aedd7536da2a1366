package aixm

import "testing"

func TestSpatialIndexCount(t *testing.T) {
	doc := parseTestMessage(t)
	idx := NewSpatialIndex(doc.Members())

	// The runway carries no geometry of its own and is not indexed.
	if got := idx.Count(); got != 2 {
		t.Errorf("Expected 2 indexed features, got %d", got)
	}
}

func TestSpatialIndexQuery(t *testing.T) {
	doc := parseTestMessage(t)
	idx := NewSpatialIndex(doc.Members())

	tests := []struct {
		name  string
		query Bounds
		want  []string
	}{
		{
			name:  "around airport reference point",
			query: Bounds{MinLat: 52.5, MinLon: -32.5, MaxLat: 53.0, MaxLon: -32.0},
			want:  []string{"airport-1"},
		},
		{
			name:  "covering everything",
			query: Bounds{MinLat: 50.0, MinLon: -35.0, MaxLat: 55.0, MaxLon: -30.0},
			want:  []string{"airport-1", "relem-1"},
		},
		{
			name:  "far away",
			query: Bounds{MinLat: 10.0, MinLon: 10.0, MaxLat: 11.0, MaxLon: 11.0},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := idx.Query(tt.query)
			if len(hits) != len(tt.want) {
				t.Fatalf("Expected %d hits, got %d", len(tt.want), len(hits))
			}
			for i, id := range tt.want {
				if hits[i].ID() != id {
					t.Errorf("Hit %d: expected %s, got %s", i, id, hits[i].ID())
				}
			}
		})
	}
}

func TestSpatialIndexExtent(t *testing.T) {
	doc := parseTestMessage(t)
	idx := NewSpatialIndex(doc.Members())

	extent, ok := idx.Extent()
	if !ok {
		t.Fatal("Expected an extent for a populated index")
	}
	expected := Bounds{MinLat: 52.0, MinLon: -32.03, MaxLat: 52.88, MaxLon: -31.0}
	if extent != expected {
		t.Errorf("Expected extent %+v, got %+v", expected, extent)
	}
}

func TestSpatialIndexEmpty(t *testing.T) {
	idx := NewSpatialIndex(nil)

	if got := idx.Count(); got != 0 {
		t.Errorf("Expected empty index, got %d entries", got)
	}
	if _, ok := idx.Extent(); ok {
		t.Error("Expected no extent for an empty index")
	}
	if hits := idx.Query(Bounds{MaxLat: 1, MaxLon: 1}); len(hits) != 0 {
		t.Errorf("Expected no hits from an empty index, got %d", len(hits))
	}
}

package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
)

func main() {
	doc, err := aixm.ParseFile("Donlon_ALL_Baseline.xml")
	if err != nil {
		log.Fatal(err)
	}

	// Index every feature with usable geometry
	index := aixm.NewSpatialIndex(doc.Members())
	fmt.Printf("Indexed features: %d\n", index.Count())

	if extent, ok := index.Extent(); ok {
		fmt.Printf("Extent: [%.4f,%.4f] to [%.4f,%.4f]\n",
			extent.MinLat, extent.MinLon,
			extent.MaxLat, extent.MaxLon)
	}

	// Everything within half a degree of the airport reference point
	hits := index.Query(aixm.Bounds{
		MinLat: 52.38, MinLon: -32.53,
		MaxLat: 53.38, MaxLon: -31.53,
	})
	fmt.Printf("Features near the airport: %d\n", len(hits))
	for _, f := range hits {
		fmt.Printf("  %-22s %s\n", f.Type(), f.ID())
	}
}

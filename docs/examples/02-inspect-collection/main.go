package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
	"github.com/beetlebugorg/go-aixm/pkg/multiply"
)

func main() {
	doc, err := aixm.ParseFile("Donlon_ALL_Baseline.xml")
	if err != nil {
		log.Fatal(err)
	}

	// Count features by type
	cat := multiply.NewCatalog(doc)
	fmt.Printf("Dataset features: %d\n", cat.Total())
	for _, t := range aixm.KnownFeatureTypes() {
		if n := cat.Count(t); n > 0 {
			fmt.Printf("  %-22s %d\n", t, n)
		}
	}

	// Collect everything belonging to the anchor airport
	set := multiply.Collect(cat, multiply.DefaultOptions())
	fmt.Printf("\nBelonging-set: %d features\n", set.Len())

	// Navaids serving the anchor move at full grid spacing when cloned;
	// the rest of the radio picture moves at a tenth of it
	for _, f := range set.Features() {
		if !aixm.IsNavaidOrEquipment(f.Type()) {
			continue
		}
		spacing := "reduced"
		if set.LocallyRelevant(f.ID()) {
			spacing = "full"
		}
		fmt.Printf("  %-10s %-8s %s spacing\n", f.Type(), f.Designator(), spacing)
	}
}

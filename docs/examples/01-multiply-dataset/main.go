package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
	"github.com/beetlebugorg/go-aixm/pkg/multiply"
)

func main() {
	// Parse the baseline dataset
	doc, err := aixm.ParseFile("Donlon_ALL_Baseline.xml")
	if err != nil {
		log.Fatal(err)
	}

	// Generate a 2x3 grid of copies
	opts := multiply.DefaultOptions()
	opts.GridRows = 2
	opts.GridCols = 3
	opts.Count = 6

	result := multiply.NewGenerator(opts).Run(doc)
	fmt.Printf("Copies: %d\n", len(result.Instances))
	fmt.Printf("Features per copy: %d\n", result.Set.Len())
	fmt.Printf("Total features: %d\n", result.TotalFeatures())

	// Write the combined file plus one directory per copy
	err = multiply.WriteResult(result, "Donlon_Dataset_Copies",
		multiply.DefaultOutputOptions())
	if err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/beetlebugorg/go-aixm/pkg/aixm"
	"github.com/beetlebugorg/go-aixm/pkg/multiply"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "aixm-multiply",
		Short: "Multiply an AIXM airport dataset across a geographic grid",
		Long: `aixm-multiply clones one airport and every feature belonging to it
(runways, taxiways, aprons, navaids, obstacles, selected airspaces) into
independent, re-identified copies laid out on a geographic grid, for use
as synthetic test fixtures.`,
		Version: version,
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate re-identified copies of the anchor airport's feature set",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringP("input", "i", "Donlon_ALL_Baseline.xml", "Input AIXM Basic Message")
	generateCmd.Flags().StringP("output", "o", "Donlon_Dataset_Copies", "Output directory")
	generateCmd.Flags().IntP("grid-rows", "r", 5, "Grid row count")
	generateCmd.Flags().IntP("grid-cols", "c", 6, "Grid column count")
	generateCmd.Flags().Float64P("distance-nm", "d", 30.0, "Grid spacing in nautical miles")
	generateCmd.Flags().IntP("count", "n", 30, "Number of copies, capped at rows*cols")
	generateCmd.Flags().StringP("anchor", "a", multiply.DefaultAnchorID, "UUID of the anchor AirportHeliport")
	generateCmd.Flags().Bool("parallel", false, "Clone copies concurrently")
	generateCmd.Flags().Int("workers", 0, "Worker goroutines with --parallel (0 = NumCPU)")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize a dataset and the anchor's belonging-set",
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringP("input", "i", "Donlon_ALL_Baseline.xml", "Input AIXM Basic Message")
	inspectCmd.Flags().StringP("anchor", "a", multiply.DefaultAnchorID, "UUID of the anchor AirportHeliport")
	inspectCmd.Flags().String("bounds", "", "Spatial query as minLat,minLon,maxLat,maxLon")

	rootCmd.AddCommand(generateCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input, err := stringFlag(cmd, "input")
	if err != nil {
		return err
	}
	output, err := stringFlag(cmd, "output")
	if err != nil {
		return err
	}
	rows, err := intFlag(cmd, "grid-rows")
	if err != nil {
		return err
	}
	cols, err := intFlag(cmd, "grid-cols")
	if err != nil {
		return err
	}
	distance, err := cmd.Flags().GetFloat64("distance-nm")
	if err != nil {
		return fmt.Errorf("failed to read --distance-nm flag: %w", err)
	}
	count, err := intFlag(cmd, "count")
	if err != nil {
		return err
	}
	anchor, err := stringFlag(cmd, "anchor")
	if err != nil {
		return err
	}
	parallel, err := cmd.Flags().GetBool("parallel")
	if err != nil {
		return fmt.Errorf("failed to read --parallel flag: %w", err)
	}
	workers, err := intFlag(cmd, "workers")
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	logger.Info("configuration",
		"input", input,
		"output", output,
		"grid", fmt.Sprintf("%dx%d", rows, cols),
		"distanceNM", distance,
		"count", count,
		"anchor", anchor,
	)

	doc, err := aixm.ParseFile(input)
	if err != nil {
		return err
	}

	opts := multiply.DefaultOptions()
	opts.AnchorID = anchor
	opts.GridRows = rows
	opts.GridCols = cols
	opts.DistanceNM = distance
	opts.Count = count
	opts.Parallel = parallel
	opts.Workers = workers
	opts.Logger = logger
	if parallel {
		opts.Progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rCloning: %d/%d", done, total)
		}
	}

	result := multiply.NewGenerator(opts).Run(doc)
	if parallel {
		fmt.Fprintln(os.Stderr)
	}
	if len(result.Instances) == 0 {
		logger.Warn("no copies generated, nothing written")
		return nil
	}

	warnOnOverlap(logger, result, distance)

	features := result.TotalFeatures()
	outOpts := multiply.DefaultOutputOptions()
	outOpts.Namespaces = doc.Namespaces()
	if err := multiply.WriteResult(result, output, outOpts); err != nil {
		return err
	}

	logger.Info("done",
		"copies", len(result.Instances),
		"features", features,
		"output", output,
	)
	return nil
}

// warnOnOverlap compares the airport surface footprint against the grid
// spacing. Navaids, obstacles and airspaces are excluded: the distant ones
// move at reduced spacing and would dwarf the airport itself.
func warnOnOverlap(logger *slog.Logger, result *multiply.Result, distanceNM float64) {
	var surface []*aixm.Feature
	for _, f := range result.Set.Features() {
		switch {
		case aixm.IsNavaidOrEquipment(f.Type()):
		case f.Type() == aixm.TypeVerticalStructure:
		case f.Type() == aixm.TypeAirspace:
		default:
			surface = append(surface, f)
		}
	}
	extent, ok := aixm.NewSpatialIndex(surface).Extent()
	if !ok {
		return
	}
	spacing := multiply.GridSpacing(distanceNM)
	if extent.Height() > spacing.Lat || extent.Width() > spacing.Lon {
		logger.Warn("airport footprint exceeds grid spacing, copies will overlap",
			"footprintLat", fmt.Sprintf("%.4f", extent.Height()),
			"footprintLon", fmt.Sprintf("%.4f", extent.Width()),
			"spacingLat", fmt.Sprintf("%.4f", spacing.Lat),
			"spacingLon", fmt.Sprintf("%.4f", spacing.Lon),
		)
	}
}

func runInspect(cmd *cobra.Command, args []string) error {
	input, err := stringFlag(cmd, "input")
	if err != nil {
		return err
	}
	anchor, err := stringFlag(cmd, "anchor")
	if err != nil {
		return err
	}
	boundsArg, err := stringFlag(cmd, "bounds")
	if err != nil {
		return err
	}

	doc, err := aixm.ParseFile(input)
	if err != nil {
		return err
	}

	cat := multiply.NewCatalog(doc)
	fmt.Printf("%s: %d features\n", input, cat.Total())
	for _, t := range aixm.KnownFeatureTypes() {
		if n := cat.Count(t); n > 0 {
			fmt.Printf("  %-22s %d\n", t, n)
		}
	}

	opts := multiply.DefaultOptions()
	opts.AnchorID = anchor
	set := multiply.Collect(cat, opts)
	if set.Len() == 0 {
		fmt.Printf("\nanchor %s: not found\n", anchor)
	} else {
		navaids, relevant := 0, 0
		for _, f := range set.Features() {
			if aixm.IsNavaidOrEquipment(f.Type()) {
				navaids++
				if set.LocallyRelevant(f.ID()) {
					relevant++
				}
			}
		}
		fmt.Printf("\nanchor %s: %d features in belonging-set\n", anchor, set.Len())
		fmt.Printf("  navaids/equipment: %d full spacing, %d reduced spacing\n",
			relevant, navaids-relevant)
	}

	idx := aixm.NewSpatialIndex(doc.Members())
	if extent, ok := idx.Extent(); ok {
		fmt.Printf("\nextent: lat %.4f to %.4f, lon %.4f to %.4f\n",
			extent.MinLat, extent.MaxLat, extent.MinLon, extent.MaxLon)
	}

	if boundsArg != "" {
		bounds, err := parseBounds(boundsArg)
		if err != nil {
			return err
		}
		hits := idx.Query(bounds)
		fmt.Printf("\n%d features intersect %s:\n", len(hits), boundsArg)
		for _, f := range hits {
			if d := f.Designator(); d != "" {
				fmt.Printf("  %-22s %s  %s\n", f.Type(), f.ID(), d)
			} else {
				fmt.Printf("  %-22s %s\n", f.Type(), f.ID())
			}
		}
	}
	return nil
}

func parseBounds(s string) (aixm.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return aixm.Bounds{}, fmt.Errorf("invalid --bounds %q: want minLat,minLon,maxLat,maxLon", s)
	}
	vals := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return aixm.Bounds{}, fmt.Errorf("invalid --bounds %q: %w", s, err)
		}
		vals[i] = v
	}
	return aixm.Bounds{MinLat: vals[0], MinLon: vals[1], MaxLat: vals[2], MaxLon: vals[3]}, nil
}

func stringFlag(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func intFlag(cmd *cobra.Command, name string) (int, error) {
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("failed to read --%s flag: %w", name, err)
	}
	return value, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

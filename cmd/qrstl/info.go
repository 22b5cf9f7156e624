package main

import (
	"fmt"

	"github.com/philipparndt/qrstl/pkg/analysis"
	"github.com/philipparndt/qrstl/pkg/stl"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an STL file",
	Long:  "Show dimensions, triangle count, surface area, volume and edge statistics of an STL file.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	model, err := stl.Parse(filename)
	if err != nil {
		return fmt.Errorf("failed to parse STL file: %w", err)
	}

	summary := analysis.Summarize(model)

	fmt.Println("STL File Information")
	fmt.Println("====================")
	if model.Name != "" {
		fmt.Printf("Name: %s\n", model.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Model Statistics:")
	fmt.Printf("  Triangles: %d\n", summary.TriangleCount)
	fmt.Printf("  Edges: %d\n", summary.EdgeCount)
	fmt.Printf("  Surface Area: %.6f square mm\n", summary.SurfaceArea)
	fmt.Printf("  Volume: %.6f cubic mm\n\n", summary.Volume)

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(summary.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(summary.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(summary.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f mm\n", summary.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f mm\n", summary.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f mm\n", summary.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f mm\n\n", summary.BoundingBox.Diagonal())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f mm\n", summary.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f mm\n", summary.MaxEdgeLength)
	fmt.Printf("  Average: %.6f mm\n", summary.AvgEdgeLength)

	return nil
}

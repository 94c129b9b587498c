package cmd

import (
	"fmt"
	"os"

	client "github.com/inovacc/routeguide/internal/client/grpc"
	"github.com/inovacc/routeguide/internal/geo"
	"github.com/spf13/cobra"
)

var featureCmd = &cobra.Command{
	Use:   "feature",
	Short: "Query the feature catalog",
}

var featureGetCmd = &cobra.Command{
	Use:   "get LATITUDE LONGITUDE",
	Short: "Look up the feature at a point",
	Long: `Look up the feature at an exact point. Coordinates are E7 integers
(degrees times 1e7). If nothing is known at the point, an unnamed result is
reported.`,
	Args: cobra.ExactArgs(2),
	RunE: runFeatureGet,
}

var featureListCmd = &cobra.Command{
	Use:   "list LO_LAT LO_LON HI_LAT HI_LON",
	Short: "List named features inside a bounding box",
	Long: `Stream every named feature inside the bounding box given by two
corner points (E7 integers). The corners may be given in any orientation.`,
	Args: cobra.ExactArgs(4),
	RunE: runFeatureList,
}

func init() {
	rootCmd.AddCommand(featureCmd)
	featureCmd.AddCommand(featureGetCmd)
	featureCmd.AddCommand(featureListCmd)
}

func runFeatureGet(cmd *cobra.Command, args []string) error {
	point, err := parsePoint(args[0], args[1])
	if err != nil {
		return err
	}

	c, err := client.New(serverAddr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	f, err := c.GetFeature(cmd.Context(), point)
	if err != nil {
		return err
	}

	printFeature(f)

	return nil
}

func runFeatureList(cmd *cobra.Command, args []string) error {
	lo, err := parsePoint(args[0], args[1])
	if err != nil {
		return err
	}

	hi, err := parsePoint(args[2], args[3])
	if err != nil {
		return err
	}

	c, err := client.New(serverAddr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	count := 0
	err = c.ListFeatures(cmd.Context(), geo.Rectangle{Lo: lo, Hi: hi}, func(f geo.Feature) error {
		count++
		printFeature(f)
		return nil
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "%d feature(s)\n", count)

	return nil
}

func printFeature(f geo.Feature) {
	name := f.Name
	if name == "" {
		name = "(unnamed)"
	}

	_, _ = fmt.Fprintf(os.Stdout, "%s at %.7f, %.7f\n",
		name, f.Location.LatitudeDegrees(), f.Location.LongitudeDegrees())
}

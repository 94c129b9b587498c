package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/inovacc/routeguide/internal/application"
	"github.com/inovacc/routeguide/internal/geo"
	"github.com/inovacc/routeguide/internal/logger"
	"github.com/spf13/cobra"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "A location catalog and route statistics service",
	Long: `RouteGuide is a gRPC service over a geographic feature catalog.
It answers point lookups, streams features within a bounding box, summarizes
client-recorded routes, and relays location-keyed chat notes.

Coordinates are given as E7 integers: decimal degrees multiplied by 1e7.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", "", "Server address (default: discover a running server)")
}

// parsePoint reads a latitude/longitude pair of E7 integer arguments.
func parsePoint(latArg, lonArg string) (geo.Point, error) {
	lat, err := strconv.ParseInt(latArg, 10, 32)
	if err != nil {
		return geo.Point{}, fmt.Errorf("invalid latitude %q: %w", latArg, err)
	}

	lon, err := strconv.ParseInt(lonArg, 10, 32)
	if err != nil {
		return geo.Point{}, fmt.Errorf("invalid longitude %q: %w", lonArg, err)
	}

	return geo.Point{Latitude: int32(lat), Longitude: int32(lon)}, nil
}

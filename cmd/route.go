package cmd

import (
	"fmt"
	"os"

	client "github.com/inovacc/routeguide/internal/client/grpc"
	"github.com/inovacc/routeguide/internal/geo"
	"github.com/spf13/cobra"
)

var routeCmd = &cobra.Command{
	Use:   "route",
	Short: "Record routes and get travel statistics",
}

var routeRecordCmd = &cobra.Command{
	Use:   "record LAT LON [LAT LON ...]",
	Short: "Record a route and print its summary",
	Long: `Stream a sequence of points (E7 integer pairs) to the server and
print the resulting summary: points visited, features passed, and total
distance in meters.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 || len(args)%2 != 0 {
			return fmt.Errorf("expected an even number of coordinates (lat lon pairs), got %d", len(args))
		}
		return nil
	},
	RunE: runRouteRecord,
}

func init() {
	rootCmd.AddCommand(routeCmd)
	routeCmd.AddCommand(routeRecordCmd)
}

func runRouteRecord(cmd *cobra.Command, args []string) error {
	points := make([]geo.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		p, err := parsePoint(args[i], args[i+1])
		if err != nil {
			return err
		}
		points = append(points, p)
	}

	c, err := client.New(serverAddr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	summary, err := c.RecordRoute(cmd.Context(), points)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Points:   %d\n", summary.PointCount)
	_, _ = fmt.Fprintf(os.Stdout, "Features: %d\n", summary.FeatureCount)
	_, _ = fmt.Fprintf(os.Stdout, "Distance: %d m\n", summary.Distance)
	_, _ = fmt.Fprintf(os.Stdout, "Elapsed:  %d s\n", summary.ElapsedTime)

	return nil
}

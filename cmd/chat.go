package cmd

import (
	"fmt"
	"os"

	client "github.com/inovacc/routeguide/internal/client/grpc"
	"github.com/inovacc/routeguide/internal/geo"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat LAT LON MESSAGE [LAT LON MESSAGE ...]",
	Short: "Exchange notes keyed by location",
	Long: `Send one or more notes, each tagged with a point (E7 integers).
For every note sent, the server streams back all notes previously recorded
at that exact point by any caller.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) < 3 || len(args)%3 != 0 {
			return fmt.Errorf("expected lat lon message triplets, got %d argument(s)", len(args))
		}
		return nil
	},
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	notes := make([]geo.RouteNote, 0, len(args)/3)
	for i := 0; i < len(args); i += 3 {
		p, err := parsePoint(args[i], args[i+1])
		if err != nil {
			return err
		}
		notes = append(notes, geo.RouteNote{Location: p, Message: args[i+2]})
	}

	c, err := client.New(serverAddr)
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	received, err := c.RouteChat(cmd.Context(), notes)
	if err != nil {
		return err
	}

	if len(received) == 0 {
		_, _ = fmt.Fprintln(os.Stdout, "No prior notes")
		return nil
	}

	for _, n := range received {
		_, _ = fmt.Fprintf(os.Stdout, "%q at %.7f, %.7f\n",
			n.Message, n.Location.LatitudeDegrees(), n.Location.LongitudeDegrees())
	}

	return nil
}

// Command radioctl queries the bot's upstream feeds directly, printing the
// same lines the bot would send to chat. Useful for checking feed health
// and reply formatting without a seabird connection.
//
// Usage:
//
//	radioctl bands
//	radioctl pota <band> [mode]
//	radioctl spots
//	radioctl --at 2026-08-23T06:33:09Z pota 20m cw
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/urfave/cli/v2"

	"github.com/loudsignal/hambot/internal/adapter/hamqsl"
	"github.com/loudsignal/hambot/internal/adapter/pota"
	"github.com/loudsignal/hambot/internal/domain"
	"github.com/loudsignal/hambot/internal/observability"
)

const (
	ExitSuccess       = 0
	ExitUpstreamError = 1
	ExitUsageError    = 2
)

// Collectors stay unregistered; radioctl serves no /metrics endpoint.
var metrics = observability.NewMetricsForTesting()

func main() {
	app := &cli.App{
		Name:  "radioctl",
		Usage: "Query the hambot upstream feeds from the command line",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "solar-url",
				Value:   "https://www.hamqsl.com/solarxml.php",
				Usage:   "hamqsl solar XML endpoint",
				EnvVars: []string{"SOLAR_XML_URL"},
			},
			&cli.StringFlag{
				Name:    "spots-url",
				Value:   "https://api.pota.app/v1/spots",
				Usage:   "POTA spot feed endpoint",
				EnvVars: []string{"POTA_SPOTS_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 10 * time.Second,
				Usage: "Upstream fetch timeout",
			},
			&cli.StringFlag{
				Name:  "at",
				Usage: "Pin the clock to an RFC3339 instant for reproducible age output",
			},
		},
		Before: pinClock,
		Commands: []*cli.Command{
			{
				Name:   "bands",
				Usage:  "Fetch and print current band conditions",
				Action: showBands,
			},
			{
				Name:      "pota",
				Usage:     "Find the most recent matching activation",
				ArgsUsage: "<band> [mode]",
				Action:    findActivation,
			},
			{
				Name:   "spots",
				Usage:  "Dump every validated activation in reply format",
				Action: listSpots,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitUpstreamError)
	}
}

// pinClock fixes the domain clock when --at is given so age output is
// reproducible across runs.
func pinClock(c *cli.Context) error {
	at := c.String("at")
	if at == "" {
		return nil
	}
	instant, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Invalid --at instant: %v", err), ExitUsageError)
	}
	domain.SetClock(clockwork.NewFakeClockAt(instant))
	return nil
}

func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

func newSolarClient(c *cli.Context) *hamqsl.Client {
	return hamqsl.NewClient(c.String("solar-url"), c.Duration("timeout"), metrics, cliLogger())
}

func newSpotsClient(c *cli.Context) *pota.Client {
	return pota.NewClient(c.String("spots-url"), c.Duration("timeout"), metrics, cliLogger())
}

func showBands(c *cli.Context) error {
	report, err := newSolarClient(c).FetchConditions(c.Context)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to fetch conditions: %v", err), ExitUpstreamError)
	}

	for _, line := range report.Lines() {
		fmt.Println(line)
	}
	return nil
}

func findActivation(c *cli.Context) error {
	if c.NArg() < 1 || c.NArg() > 2 {
		return cli.Exit("invalid pota command. Usage: pota <band> [mode]", ExitUsageError)
	}

	// Same validation order as the chat handler: mode complaints win.
	mode := domain.ModeSSB
	if c.NArg() == 2 {
		var err error
		mode, err = domain.ParseMode(c.Args().Get(1))
		if err != nil {
			return cli.Exit("invalid mode", ExitUsageError)
		}
	}

	band, err := domain.ParseBand(c.Args().Get(0))
	if err != nil {
		return cli.Exit("invalid_band", ExitUsageError)
	}

	activations, err := newSpotsClient(c).FetchActivations(c.Context)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to fetch spots: %v", err), ExitUpstreamError)
	}

	match := domain.FindMostRecentMatch(activations, band, mode)
	if match == nil {
		fmt.Printf("no activations found on %s over %s\n", band, mode)
		return nil
	}

	fmt.Println(match.Summary())
	return nil
}

func listSpots(c *cli.Context) error {
	activations, err := newSpotsClient(c).FetchActivations(c.Context)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Failed to fetch spots: %v", err), ExitUpstreamError)
	}

	for _, a := range activations {
		fmt.Println(a.Summary())
	}
	fmt.Printf("%d activations\n", len(activations))
	return nil
}

// Command keccakf applies the Keccak-f[1600] permutation to hex-encoded states, generates known-answer vectors, and
// measures permutation throughput.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/codahale/keccak1600/hazmat/keccak"
)

var (
	Version   = "DEV"
	BuildTime = "unknown"
)

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "keccakf: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree. Commands read from r, write results to w, and log to errW.
func newApp(r io.Reader, w, errW io.Writer) *cli.App {
	log := zerolog.Nop()

	app := &cli.App{}
	app.Name = "keccakf"
	app.Usage = "Apply and measure the Keccak-f[1600] permutation"
	app.UsageText = "keccakf [global options] command [command options]"
	app.Version = fmt.Sprintf("%s (built %s)", Version, BuildTime)
	app.Reader = r
	app.Writer = w
	app.ErrWriter = errW
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  logLevelFlag,
			Value: "info",
			Usage: "Application logging level {debug, info, warn, error}",
		},
	}
	app.Before = func(c *cli.Context) (err error) {
		log, err = newLogger(errW, c.String(logLevelFlag))
		return err
	}
	app.Commands = []*cli.Command{
		{
			Name:      "permute",
			Usage:     "Permute a hex-encoded 200-byte state read from stdin",
			ArgsUsage: " ",
			Description: `Reads a hex-encoded state from stdin, optionally XORs an input block into its leading bytes,
applies the permutation, and writes the hex-encoded result. Empty input is the all-zero state.`,
			Flags: []cli.Flag{
				roundsFlag(),
				&cli.StringFlag{
					Name:  "absorb",
					Usage: "Hex-encoded block of at most 200 bytes to XOR into the state before permuting",
				},
			},
			Action: func(c *cli.Context) error {
				return permute(&log, c.App.Reader, c.App.Writer, c.Int("rounds"), c.String("absorb"))
			},
		},
		{
			Name:      "kat",
			Usage:     "Write known-answer vectors for the iterated permutation of the all-zero state",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				roundsFlag(),
				&cli.IntFlag{
					Name:  "count",
					Value: 1,
					Usage: "Number of iterations to write",
				},
			},
			Action: func(c *cli.Context) error {
				return writeKAT(&log, c.App.Writer, c.Int("rounds"), c.Int("count"))
			},
		},
		{
			Name:      "bench",
			Usage:     "Measure permutation throughput",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				&cli.DurationFlag{
					Name:  "duration",
					Value: defaultBenchDuration,
					Usage: "How long to run each benchmark",
				},
			},
			Action: func(c *cli.Context) error {
				_, err := bench(&log, c.Duration("duration"))
				return err
			},
		},
		{
			Name:      "info",
			Usage:     "Print the permutation implementation and the host CPU",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				log.Debug().Str("cpu", cpuName()).Bool("simd128", hasSIMD128()).Msg("Detected")
				_, err := fmt.Fprintf(c.App.Writer, "implementation=%s lanes=%d simd128=%t cpu=%q\n",
					keccak.Implementation(), keccak.Lanes, hasSIMD128(), cpuName())
				return err
			},
		},
	}
	return app
}

func roundsFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "rounds",
		Value: keccak.Rounds,
		Usage: "Number of rounds, from 1 to 24; 24 is Keccak-f[1600], 12 is Keccak-p[1600, 12]",
	}
}

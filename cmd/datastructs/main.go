package main

import (
	"fmt"
	"io"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/amp-labs/amp-ds/logger"
	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	app := cli.App{
		Name:      "datastructs",
		Usage:     "demonstrate an ordered tree, a prefix trie and a priority queue",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "log-json",
				Usage:   "emit logs as JSON",
				EnvVars: []string{"LOG_JSON"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "minimum log level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(cctx *cli.Context) error {
			level, err := logger.ParseLevel(cctx.String("log-level"))
			if err != nil {
				return err
			}

			logger.ConfigureLoggingWithOptions(logger.Options{
				Subsystem: "datastructs",
				JSON:      cctx.Bool("log-json"),
				MinLevel:  level,
				Output:    stderr,
			})

			return nil
		},
	}

	app.Commands = []*cli.Command{
		cmdRun(),
		cmdTree(),
		cmdTrie(),
		cmdQueue(),
	}

	return app.Run(args)
}

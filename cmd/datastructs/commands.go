package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/amp-labs/amp-ds/logger"
	"github.com/amp-labs/amp-ds/scenario"
	"github.com/urfave/cli/v2"
)

var errNotInteger = errors.New("argument is not an integer")

func structureFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "structure",
		Usage: "also print the shape of the tree and the trie",
	}
}

func cmdRun() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run the built-in demonstration, or a YAML scenario file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "scenario",
				Aliases: []string{"f"},
				Usage:   "path to a YAML scenario",
				EnvVars: []string{"DATASTRUCTS_SCENARIO"},
			},
			structureFlag(),
		},
		Action: func(cctx *cli.Context) error {
			ctx := cctx.Context

			sc := scenario.Default()

			if path := cctx.String("scenario"); path != "" {
				loaded, err := scenario.LoadFile(ctx, path)
				if err != nil {
					logger.Get(ctx).Error("cannot load scenario", "error", err)

					return err
				}

				sc = loaded
			}

			return runScenario(cctx, sc)
		},
	}
}

func cmdTree() *cli.Command {
	return &cli.Command{
		Name:      "tree",
		Usage:     "insert integers into an ordered tree and print them in order",
		ArgsUsage: "[--] <int>...",
		Flags:     []cli.Flag{structureFlag()},
		Action: func(cctx *cli.Context) error {
			values, err := parseInts(cctx.Args().Slice())
			if err != nil {
				return err
			}

			return runScenario(cctx, &scenario.Scenario{
				Tree: &scenario.TreeStep{Insert: values},
			})
		},
	}
}

func cmdTrie() *cli.Command {
	return &cli.Command{
		Name:      "trie",
		Usage:     "insert words into a prefix trie and test membership",
		ArgsUsage: "<word>...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "word to look up (repeatable)",
			},
			structureFlag(),
		},
		Action: func(cctx *cli.Context) error {
			return runScenario(cctx, &scenario.Scenario{
				Trie: &scenario.TrieStep{
					Insert: cctx.Args().Slice(),
					Query:  cctx.StringSlice("query"),
				},
			})
		},
	}
}

func cmdQueue() *cli.Command {
	return &cli.Command{
		Name:      "queue",
		Usage:     "insert integers into a priority queue and extract the minimum",
		ArgsUsage: "[--] <int>...",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "extract",
				Aliases: []string{"n"},
				Usage:   "number of extractions (defaults to draining the queue)",
				Value:   -1,
			},
		},
		Action: func(cctx *cli.Context) error {
			values, err := parseInts(cctx.Args().Slice())
			if err != nil {
				return err
			}

			extract := cctx.Int("extract")
			if extract < 0 {
				extract = len(values)
			}

			return runScenario(cctx, &scenario.Scenario{
				Queue: &scenario.QueueStep{Insert: values, Extract: extract},
			})
		},
	}
}

func runScenario(cctx *cli.Context, sc *scenario.Scenario) error {
	r := &scenario.Runner{
		Out:           cctx.App.Writer,
		ShowStructure: cctx.Bool("structure"),
	}

	return r.Run(cctx.Context, sc)
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))

	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errNotInteger, arg)
		}

		values = append(values, v)
	}

	return values, nil
}

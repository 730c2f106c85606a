package main

import (
	"fmt"
	"io"
	"os"

	"github.com/a-pavithraa/lambstock/common"
	"github.com/a-pavithraa/lambstock/render"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := newApp(AWSSources, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "lambstock: %s\n", err)
		os.Exit(common.ExitCode(err))
	}
}

func newApp(sources Sources, stdout, stderr io.Writer) *cli.App {
	outputFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Value:   "table",
			Usage:   "Output format, table or json",
		}
	}
	commands := []*cli.Command{
		{
			Name:    "list",
			Aliases: []string{"ls"},
			Usage:   "Lists lambdas",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "tag",
					Usage: "Only list lambdas tagged `KEY=VALUE`",
				},
				&cli.StringFlag{
					Name:  "sort",
					Usage: "Sort by name, codesize or runtime",
				},
				&cli.BoolFlag{
					Name:  "show-tags",
					Usage: "Include each lambda's tags in the output",
				},
				outputFlag(),
			},
			OnUsageError: usageError,
			Action: func(cCtx *cli.Context) error {
				params, err := SetListParams(cCtx)
				if err != nil {
					return err
				}
				return newDispatcher(cCtx, sources).List(cCtx.Context, *params)
			},
		},
		{
			Name:         "tags",
			Usage:        "Lists lambdas tags",
			Flags:        []cli.Flag{outputFlag()},
			OnUsageError: usageError,
			Action: func(cCtx *cli.Context) error {
				if cCtx.Args().Present() {
					return &common.InputError{Message: fmt.Sprintf("unexpected argument %q", cCtx.Args().First())}
				}
				format, err := render.ParseFormat(cCtx.String("output"))
				if err != nil {
					return err
				}
				return newDispatcher(cCtx, sources).Tags(cCtx.Context, format)
			},
		},
	}

	return &cli.App{
		Name:      "lambstock",
		Usage:     "stock management for your AWS lambda",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "region",
				Aliases: []string{"r"},
				EnvVars: []string{"AWS_REGION"},
				Usage:   "AWS region",
			},
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				EnvVars: []string{"AWS_PROFILE"},
				Usage:   "Shared config profile",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LAMBSTOCK_LOG_LEVEL"},
				Value:   "warn",
				Usage:   "Log level written to stderr",
			},
		},
		Commands:     commands,
		OnUsageError: usageError,
		Before: func(cCtx *cli.Context) error {
			level, err := log.ParseLevel(cCtx.String("log-level"))
			if err != nil {
				return &common.InputError{Message: err.Error()}
			}
			log.SetOutput(cCtx.App.ErrWriter)
			log.SetLevel(level)
			return nil
		},
		Action: func(cCtx *cli.Context) error {
			if cCtx.Args().Present() {
				return &common.InputError{Message: fmt.Sprintf("unknown command %q", cCtx.Args().First())}
			}
			return cli.ShowAppHelp(cCtx)
		},
		// errors are reported by main, never by os.Exit inside the cli package
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func newDispatcher(cCtx *cli.Context, sources Sources) *dispatcher {
	return &dispatcher{
		sources: sources,
		client: common.ClientParams{
			Region:  cCtx.String("region"),
			Profile: cCtx.String("profile"),
		},
		out:   cCtx.App.Writer,
		stage: ParsingArgs,
	}
}

func usageError(cCtx *cli.Context, err error, isSubcommand bool) error {
	return &common.InputError{Message: err.Error()}
}

func SetListParams(cCtx *cli.Context) (*ListParams, error) {
	if cCtx.Args().Present() {
		return nil, &common.InputError{Message: fmt.Sprintf("unexpected argument %q", cCtx.Args().First())}
	}
	params := ListParams{ShowTags: cCtx.Bool("show-tags")}

	if cCtx.IsSet("tag") {
		filter, err := common.ParseTagFilter(cCtx.String("tag"))
		if err != nil {
			return nil, err
		}
		params.Filter = filter
	}
	sortKey, err := common.ParseSortKey(cCtx.String("sort"))
	if err != nil {
		return nil, err
	}
	params.SortKey = sortKey

	format, err := render.ParseFormat(cCtx.String("output"))
	if err != nil {
		return nil, err
	}
	params.Format = format
	return &params, nil
}

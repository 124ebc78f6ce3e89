package main

import (
	"fmt"
	"io"
	"os"

	"github.com/standardbeagle/termscan/internal/app"
	"github.com/standardbeagle/termscan/internal/config"
	"github.com/standardbeagle/termscan/internal/debug"
	"github.com/standardbeagle/termscan/internal/matcher"
	"github.com/standardbeagle/termscan/internal/report"
	"github.com/standardbeagle/termscan/internal/results"
	"github.com/standardbeagle/termscan/internal/source"
	"github.com/standardbeagle/termscan/internal/version"

	"github.com/urfave/cli/v2"
)

func newApp(stdout io.Writer) *cli.App {
	return &cli.App{
		Name:            "termscan",
		Usage:           "Search a text file for a term and log the hit rate",
		UsageText:       app.Usage,
		Version:         version.Version,
		HideHelpCommand: true,
		HideVersion:     true,
		Writer:          stdout,
		ErrWriter:       stdout,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "regex",
				Usage: "Treat the search term as a regular expression (may also follow the positionals)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (.kdl or .toml); default looks for " + config.KDLFileName + " then " + config.TOMLFileName,
			},
			&cli.StringFlag{
				Name:  "engine",
				Usage: "Regex engine: re2 or ecmascript (overrides config)",
			},
			&cli.StringFlag{
				Name:  "results",
				Usage: "Results log path (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-log",
				Usage: "Do not append to the results log",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not print the file contents",
			},
			&cli.BoolFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "Print version and build information",
			},
			&cli.BoolFlag{
				Name:  "debug-log",
				Usage: "Write diagnostics to a log file under the temp directory",
			},
		},
		Action: searchCommand,
	}
}

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if c.IsSet("engine") {
		cfg.Search.Engine = c.String("engine")
	}
	if c.IsSet("results") {
		cfg.Results.Path = c.String("results")
		cfg.Results.Enabled = true
	}
	if c.Bool("no-log") {
		cfg.Results.Enabled = false
	}
	if c.Bool("quiet") {
		cfg.Output.EchoContents = false
	}

	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func searchCommand(c *cli.Context) error {
	if c.Bool("version") {
		fmt.Fprintln(c.App.Writer, version.FullInfo())
		return nil
	}

	args, err := app.ParseArgs(c.Args().Slice())
	if err != nil {
		return err
	}
	regex := args.Regex || c.Bool("regex")

	if c.Bool("debug-log") {
		logPath, err := debug.InitDebugLogFile()
		if err != nil {
			return err
		}
		defer debug.CloseDebugLog()
		fmt.Fprintf(os.Stderr, "debug log: %s\n", logPath)
	}

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}
	debug.LogConfig("engine=%s results=%s enabled=%v sources=%v\n",
		cfg.Search.Engine, cfg.Results.Path, cfg.Results.Enabled, cfg.Sources)

	var sink results.Sink = results.Discard{}
	if cfg.Results.Enabled {
		sink = results.NewCSVLog(cfg.Results.Path)
	}

	mode := matcher.Literal
	if regex {
		mode = matcher.Regex
	}

	runner := app.New(c.App.Writer, source.NewFileReader(), sink)
	_, err = runner.Run(app.Options{
		File:         args.File,
		Term:         args.Term,
		Mode:         mode,
		Engine:       matcher.Engine(cfg.Search.Engine),
		ZeroWords:    report.ZeroWordsPolicy(cfg.Report.ZeroWords),
		EchoContents: cfg.Output.EchoContents,
	})
	return err
}

// run executes the CLI and reports any failure as a user-facing message.
// Errors never change the exit status.
func run(argv []string, stdout io.Writer) {
	if err := newApp(stdout).Run(argv); err != nil {
		fmt.Fprintln(stdout, app.UserMessage(err))
	}
}

func main() {
	run(os.Args, os.Stdout)
}

// symdef finds the textual definition of a named symbol across a tree
// of source files, like "go to definition" without a language server:
//
//	symdef parseQuery ./src
//	symdef -n --type js parseQuery ./src ./lib
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/symdef/internal/config"
	"github.com/standardbeagle/symdef/internal/debug"
	"github.com/standardbeagle/symdef/internal/display"
	symerrors "github.com/standardbeagle/symdef/internal/errors"
	"github.com/standardbeagle/symdef/internal/search"
	"github.com/standardbeagle/symdef/internal/version"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println(version.FullInfo())
	}

	app := &cli.App{
		Name:                   "symdef",
		Usage:                  "find where a symbol is defined, without a language server",
		ArgsUsage:              "<query> [path ...]",
		Version:                version.Info(),
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "file type to search (js, php, rs); guessed from the paths if not set",
			},
			&cli.BoolFlag{
				Name:    "line-number",
				Aliases: []string{"n"},
				Usage:   "show line numbers of matches",
			},
			&cli.IntFlag{
				Name:    "threads",
				Aliases: []string{"j"},
				Usage:   "number of worker threads",
			},
			&cli.StringFlag{
				Name:  "search-method",
				Usage: "pre-scan strategy (prescan-regex, prescan-literal, no-prescan)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "exclude files matching glob patterns (e.g. --exclude 'vendor/**')",
			},
			&cli.BoolFlag{
				Name:  "ignore",
				Usage: "honor .gitignore rules even when the defaults file disables them",
			},
			&cli.BoolFlag{
				Name:  "no-ignore",
				Usage: "do not honor .gitignore rules",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable color output (NO_COLOR is also honored)",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "defaults file path",
				Value:   config.DefaultsFile,
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "print debugging information",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(symerrors.ExitCode(err))
	}
}

func run(c *cli.Context) error {
	if c.NArg() < 1 {
		return symerrors.NewConfigError("parse arguments",
			errors.New("usage: symdef [options] <query> [path ...]"))
	}

	if c.Bool("debug") {
		debug.SetOutput(os.Stderr)
	}

	// Only an explicitly passed --config forces the file to exist; the
	// flag's default value is an implicit lookup.
	configPath := ""
	if c.IsSet("config") {
		configPath = c.String("config")
	}

	cfg, err := config.New(config.Options{
		Query:      c.Args().First(),
		Paths:      c.Args().Tail(),
		TypeName:   c.String("type"),
		LineNumber: c.Bool("line-number"),
		MethodName: c.String("search-method"),
		Threads:    c.Int("threads"),
		NoColor:    c.Bool("no-color"),
		Debug:      c.Bool("debug"),
		Excludes:   c.StringSlice("exclude"),
		Ignore:     c.Bool("ignore"),
		NoIgnore:   c.Bool("no-ignore"),
		ConfigPath: configPath,
	})
	if err != nil {
		return err
	}

	results, err := search.NewEngine(cfg).Search()
	if err != nil {
		return err
	}

	formatter := display.NewFormatter(cfg.NoColor)
	for _, r := range results {
		fmt.Println(formatter.Format(r))
	}
	return nil
}

// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mjisho"
	"github.com/ianlewis/go-mjisho/internal/config"
	"github.com/ianlewis/go-mjisho/internal/logger"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrMjisho is a parent error for all command errors.
var ErrMjisho = errors.New("mjisho")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrMjisho)

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag such that it takes a command name argument which would make
	// `mjisho --help query` report a "command query not found" error instead
	// of the help. The help flags are defined explicitly instead.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// newHelpFlag returns the help flag for a command.
func newHelpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:               "help",
		Usage:              "print this help text and exit",
		Aliases:            []string{"h"},
		DisableDefaultText: true,
	}
}

// newMjisho returns a new Mjisho using the log level given on the command
// line.
func newMjisho(c *cli.Context, cfg *config.Config) (*mjisho.Mjisho, error) {
	logCfg := cfg.Logger()
	logCfg.Level = c.String("log-level")
	logCfg.Output = c.App.ErrWriter
	l, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	return mjisho.New(&mjisho.Options{
		Logger:    &l,
		DictName:  cfg.DictName,
		IdiomName: cfg.IdiomName,
	}), nil
}

// findDocument returns the path of the first document named base found in
// dirs.
func findDocument(dirs []string, base string) (string, error) {
	for _, dir := range dirs {
		path, err := mjisho.FindDocument(dir, base)
		if err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %q in %s", mjisho.ErrNotFound, base, strings.Join(dirs, ", "))
}

// queryArg returns the single QUERY argument of a command.
func queryArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("%w: expected one QUERY argument, got %d", ErrFlagParse, c.NArg())
	}
	return c.Args().First(), nil
}

func newMjishoApp(cfg *config.Config) *cli.App {
	dataDirs := dictLocations()
	if cfg.DataDir != "" {
		dataDirs = []string{cfg.DataDir}
	}

	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Search Japanese word and idiom dictionaries.",
		Description: strings.Join([]string{
			"Japanese dictionary utility written in Go.",
			"http://github.com/ianlewis/go-mjisho",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "data-dir",
				Usage:   "search for dictionaries in `DIR`",
				Aliases: []string{"d"},
				Value:   cli.NewStringSlice(dataDirs...),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error, disabled)",
				Value: cfg.Log.Level,
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			queryCommand(cfg),
			idiomCommand(cfg),
			infoCommand(cfg),
		},
	}
}

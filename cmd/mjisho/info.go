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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mjisho/internal/config"
	"github.com/ianlewis/go-mjisho/jmdict"
	"github.com/ianlewis/go-mjisho/kanyouku"
)

func infoCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:            "info",
		Usage:           "Show dictionary information",
		Description:     "Load the word and idiom dictionaries and show the number of entries read.",
		Flags:           []cli.Flag{newHelpFlag()},
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				return cli.ShowCommandHelp(c, c.Command.Name)
			}

			m, err := newMjisho(c, cfg)
			if err != nil {
				return err
			}

			dirs := c.StringSlice("data-dir")
			tbl := table.New("NAME", "PATH", "ENTRIES", "SKIPPED", "DURATION").WithWriter(c.App.Writer)

			var errs []error
			if path, err := findDocument(dirs, cfg.DictName); err != nil {
				errs = append(errs, err)
			} else if err := m.LoadWords(path, func(r jmdict.Result) {
				tbl.AddRow(cfg.DictName, path, r.Entries, r.Skipped, r.Duration)
			}); err != nil {
				errs = append(errs, err)
			}

			if path, err := findDocument(dirs, cfg.IdiomName); err != nil {
				errs = append(errs, err)
			} else if err := m.LoadIdioms(path, func(r kanyouku.Result) {
				tbl.AddRow(cfg.IdiomName, path, r.Entries, r.Skipped, r.Duration)
			}); err != nil {
				errs = append(errs, err)
			}

			tbl.Print()

			for _, err := range errs {
				fmt.Fprintln(c.App.ErrWriter, err)
			}
			return errors.Join(errs...)
		},
	}
}

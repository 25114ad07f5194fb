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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-mjisho/internal/config"
)

func queryCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Search the word dictionary",
		ArgsUsage: "QUERY",
		Description: strings.Join([]string{
			"Search the word dictionary for QUERY. QUERY may contain '?' to match",
			"any one character and '*' to match any number of characters.",
			"English queries search glosses, kana queries search readings and",
			"all other queries search written forms.",
		}, "\n"),
		Flags:           []cli.Flag{newHelpFlag()},
		HideHelp:        true,
		HideHelpCommand: true,
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				return cli.ShowCommandHelp(c, c.Command.Name)
			}

			query, err := queryArg(c)
			if err != nil {
				return err
			}

			m, err := newMjisho(c, cfg)
			if err != nil {
				return err
			}

			path, err := findDocument(c.StringSlice("data-dir"), cfg.DictName)
			if err != nil {
				return err
			}
			if err := m.LoadWords(path, nil); err != nil {
				return err
			}

			tbl := table.New("ID", "READING", "WRITING", "GLOSS").WithWriter(c.App.Writer)
			for _, e := range m.Words.Lookup(query) {
				tbl.AddRow(
					e.ID,
					strings.Join(e.Readings, ", "),
					strings.Join(e.Writings, ", "),
					strings.Join(e.Glosses(), "; "),
				)
			}
			tbl.Print()

			return nil
		},
	}
}

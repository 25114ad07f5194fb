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
	"github.com/ianlewis/go-mjisho/kanyouku"
)

func idiomCommand(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "idiom",
		Usage:     "Search the idiom dictionary",
		ArgsUsage: "QUERY",
		Description: strings.Join([]string{
			"Search the idiom dictionary for QUERY. Kana queries search phrase",
			"readings and all other queries search phrase writings.",
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

			path, err := findDocument(c.StringSlice("data-dir"), cfg.IdiomName)
			if err != nil {
				return err
			}
			if err := m.LoadIdioms(path, nil); err != nil {
				return err
			}

			tbl := table.New("ID", "READING", "WRITING", "MODE", "MEANING").WithWriter(c.App.Writer)
			for _, e := range m.Idioms.Lookup(query) {
				meaning := meanings(e)
				for _, p := range e.Phrases {
					tbl.AddRow(e.ID, p.Reading, p.Writing, p.Mode, meaning)
				}
			}
			tbl.Print()

			return nil
		},
	}
}

func meanings(e *kanyouku.Entry) string {
	m := make([]string, 0, len(e.Senses))
	for _, s := range e.Senses {
		m = append(m, s.Meaning)
	}
	return strings.Join(m, " / ")
}

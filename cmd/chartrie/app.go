package main

import (
	"errors"
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/urfave/cli"
	"golang.org/x/text/language"

	"github.com/forestrie/go-chartrie/chartrie"
)

var ErrBadPair = errors.New("chartrie: expected key=value")

// runner carries the state resolved from the global flags.
type runner struct {
	log  logger.Logger
	less chartrie.Less
}

func newApp() *cli.App {
	r := &runner{}

	app := cli.NewApp()
	app.Name = "chartrie"
	app.Usage = "ordered character trie demonstration"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level",
			Value:  "INFO",
			Usage:  "log level (DEBUG, INFO, NOOP, ...)",
			EnvVar: "CHARTRIE_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "locale",
			Usage:  "BCP 47 tag selecting locale aware, case insensitive ordering",
			EnvVar: "CHARTRIE_LOCALE",
		},
		cli.BoolFlag{
			Name:   "case-sensitive",
			Usage:  "order by code point instead of folding case",
			EnvVar: "CHARTRIE_CASE_SENSITIVE",
		},
	}
	app.Before = r.before
	app.Commands = []cli.Command{
		{
			Name:   "demo",
			Usage:  "insert, look up, range over and remove the sample keys",
			Action: r.demo,
		},
		{
			Name:      "ls",
			Usage:     "list the given pairs in ascending key order",
			ArgsUsage: "KEY=VALUE...",
			Action:    r.list,
		},
		{
			Name:      "ge",
			Usage:     "list the given pairs whose key is not less than FROM",
			ArgsUsage: "FROM KEY=VALUE...",
			Action:    r.greaterOrEqual,
		},
		{
			Name:      "rm",
			Usage:     "remove KEY (and every longer key starting with it) then list",
			ArgsUsage: "KEY KEY=VALUE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "prefix",
					Usage: "prune even when KEY is only a prefix of stored keys",
				},
			},
			Action: r.remove,
		},
	}
	return app
}

func (r *runner) before(c *cli.Context) error {
	logger.New(c.GlobalString("log-level"))
	r.log = logger.Sugar.WithServiceName("chartrie")

	less, err := comparator(c.GlobalString("locale"), c.GlobalBool("case-sensitive"))
	if err != nil {
		return err
	}
	r.less = less
	return nil
}

func comparator(locale string, caseSensitive bool) (chartrie.Less, error) {
	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("bad --locale %q: %w", locale, err)
		}
		return chartrie.CollatorLess(tag), nil
	}
	if caseSensitive {
		return chartrie.ExactLess, nil
	}
	return chartrie.FoldLess, nil
}

func (r *runner) newTrie() *chartrie.Trie[string] {
	return chartrie.New[string](chartrie.WithComparator(r.less), chartrie.WithLogger(r.log))
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/forestrie/go-chartrie/chartrie"
)

// demoKeys are inserted in order with values 1..n. Several differ only by
// case and collapse onto one key.
var demoKeys = []string{"альфа", "аЛьфа", "аМьфа", "аАьфа", "бета", "гамма", "дельта", "эпсилон"}

// demoRemovals mixes stored keys, bare prefixes and unresolvable keys.
var demoRemovals = []string{"аМьфа", "аМ", "ааМ", "бетЯ", "бет", "а"}

func (r *runner) demo(c *cli.Context) error {
	w := c.App.Writer
	tr := chartrie.New[int](chartrie.WithComparator(r.less), chartrie.WithLogger(r.log))

	for i, k := range demoKeys {
		tr.Add(k, i+1)
		r.log.Debugf("added %q=%d, keys=%d, nodes=%d", k, i+1, tr.Len(), tr.NodeCount())
		renderPairs(w, fmt.Sprintf("after adding %q = %d", k, i+1), tr.All())
	}

	for ch := 'а'; ch < 'я'; ch++ {
		from := string(ch)
		if tr.LowerBound(from).End() {
			continue
		}
		renderPairs(w, fmt.Sprintf("keys not less than %q", from), tr.Ascend(from))
	}

	found := make([][2]string, 0, len(demoKeys))
	for _, k := range demoKeys {
		it := tr.Find(k)
		if it.End() {
			found = append(found, [2]string{k, "key not found"})
			continue
		}
		found = append(found, [2]string{k, strconv.Itoa(it.Value())})
	}
	renderRows(w, "find", [2]string{"key", "value"}, found)

	var ascending [][2]string
	for it := tr.Begin(); !it.End(); it.Next() {
		ascending = append(ascending, [2]string{it.Key(), strconv.Itoa(it.Value())})
	}
	renderRows(w, "ascending traversal", [2]string{"key", "value"}, ascending)

	removed := make([][2]string, 0, len(demoRemovals))
	for _, k := range demoRemovals {
		removed = append(removed, [2]string{k, outcome(tr.RemovePrefix(k))})
	}
	renderRows(w, "remove", [2]string{"key", "result"}, removed)
	renderPairs(w, "remaining", tr.All())
	return nil
}

func (r *runner) list(c *cli.Context) error {
	tr, err := r.load(c.Args())
	if err != nil {
		return err
	}
	renderPairs(c.App.Writer, fmt.Sprintf("%d keys", tr.Len()), tr.All())
	return nil
}

func (r *runner) greaterOrEqual(c *cli.Context) error {
	args := c.Args()
	if len(args) < 1 {
		return cli.NewExitError("ge: FROM is required", 2)
	}
	tr, err := r.load(args[1:])
	if err != nil {
		return err
	}
	renderPairs(c.App.Writer, fmt.Sprintf("keys not less than %q", args[0]), tr.Ascend(args[0]))
	return nil
}

func (r *runner) remove(c *cli.Context) error {
	args := c.Args()
	if len(args) < 1 {
		return cli.NewExitError("rm: KEY is required", 2)
	}
	tr, err := r.load(args[1:])
	if err != nil {
		return err
	}
	var ok bool
	if c.Bool("prefix") {
		ok = tr.RemovePrefix(args[0])
	} else {
		ok = tr.RemoveKey(args[0])
	}
	r.log.Infof("remove %q: %s", args[0], outcome(ok))
	renderPairs(c.App.Writer, fmt.Sprintf("after removing %q: %s", args[0], outcome(ok)), tr.All())
	return nil
}

func (r *runner) load(pairs []string) (*chartrie.Trie[string], error) {
	tr := r.newTrie()
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadPair, p)
		}
		tr.Add(k, v)
	}
	return tr, nil
}

func outcome(ok bool) string {
	if ok {
		return "done"
	}
	return "not done"
}

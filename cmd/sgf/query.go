package main

import (
	"fmt"
	"strings"

	"github.com/kifulab/go-sgf/eval"
	"github.com/kifulab/go-sgf/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	q, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	total := 0
	for _, file := range args {
		root, err := getGameFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if root == nil {
			continue
		}
		matches, err := eval.Select(root, q)
		if err != nil {
			return fmt.Errorf("error querying %s with %s: %w", file, q, err)
		}
		total += len(matches)
		if cfg.Count {
			continue
		}
		for _, m := range matches {
			if _, err := fmt.Fprintln(cc.Out, nodeLine(m)); err != nil {
				return err
			}
		}
	}
	if cfg.Count {
		_, err := fmt.Fprintln(cc.Out, total)
		return err
	}
	return nil
}

// nodeLine renders a single node without its subtree.
func nodeLine(n *ir.Node) string {
	var b strings.Builder
	b.WriteByte(';')
	for _, p := range n.Properties() {
		b.WriteString(p.Tag)
		for _, v := range p.Values {
			b.WriteByte('[')
			b.WriteString(v)
			b.WriteByte(']')
		}
	}
	return b.String()
}

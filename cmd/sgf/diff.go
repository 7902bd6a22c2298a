package main

import (
	"fmt"

	"github.com/kifulab/go-sgf/encode"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	from, err := canonFile(cfg, cc, args[0])
	if err != nil {
		return err
	}
	to, err := canonFile(cfg, cc, args[1])
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	if cfg.Delta {
		_, err = fmt.Fprintln(cc.Out, diffCfg.DiffToDelta(diffs))
		return err
	}
	if len(diffs) == 1 && diffs[0].Type == diffpatch.DiffEqual {
		return nil
	}
	_, err = fmt.Fprintln(cc.Out, diffCfg.DiffPrettyText(diffs))
	return err
}

// canonFile parses a game file and re-encodes it without indentation
// or color so the diff reflects structure, not formatting.
func canonFile(cfg *DiffConfig, cc *cli.Context, file string) (string, error) {
	root, err := getGameFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return "", fmt.Errorf("error processing %s: %w", file, err)
	}
	if root == nil {
		return "", nil
	}
	return encode.MustString(root), nil
}

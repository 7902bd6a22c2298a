package main

import (
	"fmt"

	"github.com/kifulab/go-sgf/ir"
	"github.com/kifulab/go-sgf/parse"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

type gameStats struct {
	File       string `yaml:"file,omitempty"`
	Nodes      int    `yaml:"nodes"`
	Properties int    `yaml:"properties"`
	Values     int    `yaml:"values"`
	Leaves     int    `yaml:"leaves"`
	Variations int    `yaml:"variations"`
	MaxDepth   int    `yaml:"maxDepth"`
}

func stat(cfg *StatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stat.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	all := make([]*gameStats, 0, len(args))
	for _, file := range args {
		st, err := statFile(cc, file)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if len(args) > 1 {
			st.File = file
		}
		all = append(all, st)
	}
	var out any = all[0]
	if len(all) > 1 {
		out = all
	}
	d, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}

func statFile(cc *cli.Context, file string) (*gameStats, error) {
	alloc := ir.NewTrackingAllocator()
	root, err := getGameFile(cc, file, parse.ParseAllocator(alloc))
	if err != nil {
		return nil, err
	}
	st := &gameStats{Nodes: len(alloc.Live())}
	if root == nil {
		return st, nil
	}
	ft := ir.Flatten(root)
	for _, c := range ft.Counts {
		st.Properties += c
	}
	for _, isTag := range ft.IsTag {
		if !isTag {
			st.Values++
		}
	}
	depths := make([]int, ft.NumNodes())
	for i, p := range ft.Parents {
		if p >= 0 {
			depths[i] = depths[p] + 1
		}
		if depths[i] > st.MaxDepth {
			st.MaxDepth = depths[i]
		}
	}
	err = root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		switch {
		case n.NumChildren == 0:
			st.Leaves++
		case n.NumChildren > 1:
			st.Variations++
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: 2}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "sgf").
		WithSynopsis("sgf [opts] command [opts]").
		WithDescription("sgf is a tool for working with Smart Game Format game records.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sgfMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			StatCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("reformat game records, with color on terminals").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func StatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("stat").
		WithAliases("s", "st").
		WithSynopsis("stat [files]").
		WithDescription("summarize game records as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return stat(cfg, cc, args)
		})
	cfg.Stat = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff a.sgf b.sgf").
		WithDescription("diff two game records in canonical form").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("query").
		WithAliases("q", "qu").
		WithOpts(opts...).
		WithSynopsis("query <expr> [files]").
		WithDescription("select nodes matching an expression, e.g. 'has(\"B\") && depth > 4'").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

package main

import (
	"errors"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		{
			Name:        "r",
			Aliases:     []string{"resource"},
			Description: "default template file",
			Type:        cli.NamedFuncOpt(cfg.strOpt(&cfg.Resource), "(filepath)"),
		},
		{
			Name:        "f",
			Aliases:     []string{"file"},
			Description: "target file to reconcile",
			Type:        cli.NamedFuncOpt(cfg.strOpt(&cfg.File), "(filepath)"),
		},
		{
			Name:        "i",
			Aliases:     []string{"ignore"},
			Description: "dotted path to leave untouched (repeatable)",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.ignoreOpt), "(dotted.path)"),
		},
	}...)

	return cli.NewCommandAt(&cfg.Main, "yamlup").
		WithSynopsis("yamlup [opts] command [opts]").
		WithDescription("yamlup reconciles YAML files against their default templates, preserving comments, key order and ignored sections.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamlupMain(cfg, cc, args)
		}).
		WithSubs(
			UpdateCommand(cfg),
			DiffCommand(cfg),
			CommentsCommand(cfg))
}

func yamlupMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return cli.ErrNoSuchCommand
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func UpdateCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("update").
		WithAliases("u", "up").
		WithSynopsis("update -r <template> -f <file> [-i path]...").
		WithDescription("merge missing template keys into the file, in place").
		WithRun(func(cc *cli.Context, args []string) error {
			return runUpdate(mainCfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff -r <template> -f <file> [-i path]...").
		WithDescription("show what update would change, without writing").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(mainCfg, cc, args)
		})
}

func CommentsCommand(mainCfg *MainConfig) *cli.Command {
	return cli.NewCommand("comments").
		WithAliases("c").
		WithSynopsis("comments -r <template>").
		WithDescription("dump the comment blocks extracted from a template").
		WithRun(func(cc *cli.Context, args []string) error {
			return runComments(mainCfg, cc, args)
		})
}

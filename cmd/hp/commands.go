package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "hp").
		WithSynopsis("hp [opts] command [opts]").
		WithDescription("hp navigates json and yaml documents lazily.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return hpMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			KeysCommand(cfg),
			SetCommand(cfg),
			EvalCommand(cfg),
			PatchCommand(cfg),
			DumpCommand(cfg),
			LoadCommand(cfg),
			VerifyCommand(cfg))
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the value at a key path, null when absent").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("k").
		WithSynopsis("keys [-p path] [files]").
		WithDescription("list the keys of a mapping with the kind of each value").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithSynopsis("set <path=value> [files]").
		WithDescription("set the value at a key path, value is parsed as yaml").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return hpEval(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression against each document.

Expressions use the expr language.  The document is available as 'doc' and
the following functions are defined:

  get(path)     the value at path, absent values are returned as is
  text(path)    the value at path as a string, "" when absent
  has(path)     whether the value at path is present
  keys(path)    the keys of the mapping at path
  absent(v)     whether v is absent`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [opts] <patchfile> [files]").
		WithDescription("apply a json patch (rfc 6902) to each document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [-touch paths] [files]").
		WithDescription("dump the persisted form of each document, one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithSynopsis("load [dump-files]").
		WithDescription("load persisted documents and render them").
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func VerifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VerifyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Verify, "verify").
		WithAliases("v").
		WithSynopsis("verify <paths> [files]").
		WithDescription("read comma separated paths then diff the json form against the source").
		WithRun(func(cc *cli.Context, args []string) error {
			return verify(cfg, cc, args)
		})
}

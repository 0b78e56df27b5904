package main

import (
	"fmt"
	"io"

	"github.com/signadot/hashproxy/debug"
	"github.com/signadot/hashproxy/encode"
	"github.com/signadot/hashproxy/proxy"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func hpEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	opts := cfg.encOpts(cc.Out)
	return eachProxy(cfg.MainConfig, cc, args[1:], func(w io.Writer, p *proxy.Proxy) error {
		return evalDoc(w, p, src, opts...)
	})
}

func evalDoc(w io.Writer, p *proxy.Proxy, src string, opts ...encode.EncodeOption) error {
	env := map[string]any{"doc": p}
	prg, err := expr.Compile(src, append([]expr.Option{expr.Env(env)}, exprOpts(p)...)...)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return err
	}
	if debug.Eval() {
		debug.Logf("eval %q -> %s\n", src, proxy.KindOf(res))
	}
	return encode.Encode(res, w, opts...)
}

func exprOpts(p *proxy.Proxy) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			return proxy.GetPath(p, params[0].(string))
		},
			new(func(string) any)),
		expr.Function("text", func(params ...any) (any, error) {
			v, err := proxy.GetPath(p, params[0].(string))
			if err != nil {
				return nil, err
			}
			return fmt.Sprint(v), nil
		},
			new(func(string) string)),
		expr.Function("has", func(params ...any) (any, error) {
			v, err := proxy.GetPath(p, params[0].(string))
			if err != nil {
				return nil, err
			}
			return !proxy.IsAbsent(v), nil
		},
			new(func(string) bool)),
		expr.Function("keys", func(params ...any) (any, error) {
			path := params[0].(string)
			v, err := proxy.GetPath(p, path)
			if err != nil {
				return nil, err
			}
			switch x := v.(type) {
			case *proxy.Proxy:
				return x.Keys(), nil
			case proxy.Absent:
				return x.Keys(), nil
			default:
				return nil, fmt.Errorf("keys: %s is %s, not a mapping", path, proxy.KindOf(v))
			}
		},
			new(func(string) []string)),
		expr.Function("absent", func(params ...any) (any, error) {
			return proxy.IsAbsent(params[0]), nil
		},
			new(func(any) bool)),
	}
}

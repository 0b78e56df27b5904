package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/hashproxy/encode"
	"github.com/signadot/hashproxy/parse"
	"github.com/signadot/hashproxy/proxy"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: set requires one argument, path=value", cli.ErrUsage)
	}
	assign := args[0]
	if _, _, err := parseAssign(assign); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	opts := cfg.encOpts(cc.Out)
	return eachProxy(cfg.MainConfig, cc, args[1:], func(w io.Writer, p *proxy.Proxy) error {
		return setDoc(w, p, assign, opts...)
	})
}

// setDoc decodes the value afresh for each document since the proxy takes
// ownership of it.
func setDoc(w io.Writer, p *proxy.Proxy, assign string, opts ...encode.EncodeOption) error {
	path, val, err := parseAssign(assign)
	if err != nil {
		return err
	}
	if err := proxy.SetPath(p, path, val); err != nil {
		return err
	}
	return encode.Encode(p, w, opts...)
}

// parseAssign splits path=value, decoding value as yaml.
func parseAssign(a string) (string, any, error) {
	path, text, ok := strings.Cut(a, "=")
	if !ok || path == "" {
		return "", nil, fmt.Errorf("expected path=value, got %q", a)
	}
	val, err := parse.Parse([]byte(text))
	if err != nil {
		return "", nil, err
	}
	return path, val, nil
}

package main

import (
	"fmt"
	"io"

	"github.com/signadot/hashproxy/encode"
	"github.com/signadot/hashproxy/proxy"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachProxy(cfg.MainConfig, cc, args, func(w io.Writer, p *proxy.Proxy) error {
		return keysDoc(w, p, cfg.Path, opts...)
	})
}

func keysDoc(w io.Writer, p *proxy.Proxy, path string, opts ...encode.EncodeOption) error {
	if path != "" {
		v, err := proxy.GetPath(p, path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		q, ok := v.(*proxy.Proxy)
		if !ok {
			return fmt.Errorf("%s is %s, not a mapping", path, proxy.KindOf(v))
		}
		p = q
	}
	return encode.EncodeKeys(p, w, opts...)
}

package main

import (
	"fmt"
	"io"

	"github.com/signadot/hashproxy/encode"
	"github.com/signadot/hashproxy/proxy"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a key path", cli.ErrUsage)
	}
	path := args[0]
	opts := cfg.encOpts(cc.Out)
	return eachProxy(cfg.MainConfig, cc, args[1:], func(w io.Writer, p *proxy.Proxy) error {
		return getDoc(w, p, path, opts...)
	})
}

func getDoc(w io.Writer, p *proxy.Proxy, path string, opts ...encode.EncodeOption) error {
	v, err := proxy.GetPath(p, path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return encode.Encode(v, w, opts...)
}

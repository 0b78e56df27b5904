package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/hashproxy/proxy"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	touch := splitPaths(cfg.Touch)
	return eachProxy(cfg.MainConfig, cc, args, func(w io.Writer, p *proxy.Proxy) error {
		return dumpDoc(w, p, touch)
	})
}

func dumpDoc(w io.Writer, p *proxy.Proxy, touch []string) error {
	for _, path := range touch {
		if _, err := proxy.GetPath(p, path); err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	d, err := p.MarshalBinary()
	if err != nil {
		return err
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

func splitPaths(v string) []string {
	if v == "" {
		return nil
	}
	return strings.Split(v, ",")
}

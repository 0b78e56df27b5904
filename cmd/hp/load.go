package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/hashproxy/encode"
	"github.com/signadot/hashproxy/proxy"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	n := 0
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		ps, err := loadDump(d)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
		for _, p := range ps {
			if n > 0 && cfg.outFormat().IsYAML() {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return err
				}
			}
			if err := encode.Encode(p, cc.Out, opts...); err != nil {
				return err
			}
			n++
		}
	}
	return nil
}

// loadDump restores the proxies of a dump, one per non empty line.
func loadDump(d []byte) ([]*proxy.Proxy, error) {
	var res []*proxy.Proxy
	for i, ln := range bytes.Split(d, []byte("\n")) {
		ln = bytes.TrimSpace(ln)
		if len(ln) == 0 {
			continue
		}
		p := &proxy.Proxy{}
		if err := p.UnmarshalBinary(ln); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		res = append(res, p)
	}
	return res, nil
}

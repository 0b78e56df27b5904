package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/hashproxy"
	"github.com/signadot/hashproxy/encode"
	"github.com/signadot/hashproxy/parse"
	"github.com/signadot/hashproxy/proxy"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	ops, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	return eachProxy(cfg.MainConfig, cc, args[1:], func(w io.Writer, p *proxy.Proxy) error {
		res, err := patchDoc(p, ops)
		if err != nil {
			return err
		}
		return encode.Encode(res, w, opts...)
	})
}

// getPatch reads a patch given in json or yaml, from a file or, with -s,
// from the argument itself.
func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (jsonpatch.Patch, error) {
	d := []byte(arg)
	if !cfg.String {
		var err error
		d, err = readInput(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	return decodePatch(d)
}

func decodePatch(d []byte) (jsonpatch.Patch, error) {
	v, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	jd, err := json.Marshal(proxy.Plain(v))
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(jd)
	if err != nil {
		return nil, fmt.Errorf("error decoding patch: %w", err)
	}
	return ops, nil
}

// patchDoc applies ops to the json form of p and wraps the result.
func patchDoc(p *proxy.Proxy, ops jsonpatch.Patch) (*proxy.Proxy, error) {
	d, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("error applying patch: %w", err)
	}
	return hashproxy.Load(out, parse.ParseJSON())
}

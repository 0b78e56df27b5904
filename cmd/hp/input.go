package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/hashproxy"
	"github.com/signadot/hashproxy/parse"
	"github.com/signadot/hashproxy/proxy"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func inputs(files []string) []string {
	if len(files) == 0 {
		return []string{"-"}
	}
	return files
}

// eachDoc calls f on every document of every input, standard input when
// there are no files. YAML output separates documents with ---.
func eachDoc(cfg *MainConfig, cc *cli.Context, files []string, f func(w io.Writer, doc any) error) error {
	n := 0
	for _, file := range inputs(files) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		docs, err := parse.ParseAll(d, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		for i, doc := range docs {
			if n > 0 && cfg.outFormat().IsYAML() {
				if _, err := io.WriteString(cc.Out, "---\n"); err != nil {
					return err
				}
			}
			if err := f(cc.Out, doc); err != nil {
				return fmt.Errorf("error processing %s document %d: %w", file, i, err)
			}
			n++
		}
	}
	return nil
}

func eachProxy(cfg *MainConfig, cc *cli.Context, files []string, f func(w io.Writer, p *proxy.Proxy) error) error {
	return eachDoc(cfg, cc, files, func(w io.Writer, doc any) error {
		p, err := hashproxy.CreateFrom(doc)
		if err != nil {
			return err
		}
		return f(w, p)
	})
}

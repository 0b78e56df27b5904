package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/hashproxy"
	"github.com/signadot/hashproxy/proxy"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

var errDiffers = errors.New("json form differs from source")

func verify(cfg *VerifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Verify.Parse(cc, args)
	if err != nil {
		cfg.Verify.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: verify requires one argument, comma separated paths", cli.ErrUsage)
	}
	paths := splitPaths(args[0])
	failed := 0
	err = eachDoc(cfg.MainConfig, cc, args[1:], func(w io.Writer, doc any) error {
		ok, err := verifyDoc(w, doc, paths)
		if !ok {
			failed++
		}
		return err
	})
	if err != nil {
		return err
	}
	if failed != 0 {
		return fmt.Errorf("%w: %d documents", errDiffers, failed)
	}
	return nil
}

// verifyDoc reads paths through a proxy over doc and compares its json
// form with the json form of doc taken beforehand, writing "ok" or a diff.
func verifyDoc(w io.Writer, doc any, paths []string) (bool, error) {
	eager, err := json.MarshalIndent(proxy.Plain(doc), "", "  ")
	if err != nil {
		return false, err
	}
	p, err := hashproxy.CreateFrom(doc)
	if err != nil {
		return false, err
	}
	for _, path := range paths {
		if _, err := proxy.GetPath(p, path); err != nil {
			return false, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	lazy, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return false, err
	}
	if bytes.Equal(eager, lazy) {
		_, err := io.WriteString(w, "ok\n")
		return true, err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(eager), string(lazy), true)
	_, err = io.WriteString(w, dmp.DiffPrettyText(diffs)+"\n")
	return false, err
}

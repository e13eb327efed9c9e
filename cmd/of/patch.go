package main

import (
	"fmt"
	"io"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/objform/objform/jsontext"
)

// ofPatch applies a JSON merge patch. Documents in any input format
// pass through the tree to JSON, get patched, and come back out in the
// output format.
func ofPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch takes a patch argument", cli.ErrUsage)
	}
	var patch []byte
	if cfg.String {
		patch = []byte(args[0])
	} else {
		patch, err = os.ReadFile(args[0])
		if err != nil {
			return err
		}
	}
	// merge patches are JSON regardless of the document format
	pnode, err := jsontext.Parse(patch)
	if err != nil {
		return fmt.Errorf("bad patch: %w", err)
	}
	patch, err = jsontext.Marshal(pnode)
	if err != nil {
		return err
	}

	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		docJSON, err := jsontext.Marshal(node)
		if err != nil {
			return err
		}
		patched, err := jsonpatch.MergePatch(docJSON, patch)
		if err != nil {
			return err
		}
		out, err := jsontext.Parse(patched)
		if err != nil {
			return err
		}
		f := cfg.outFormat(cfg.inFormat(file))
		if err := writeDoc(cc.Out, out, f, cfg.Indent); err != nil {
			return err
		}
		if cfg.Indent == 0 || i < len(files)-1 {
			io.WriteString(cc.Out, "\n")
		}
	}
	return nil
}

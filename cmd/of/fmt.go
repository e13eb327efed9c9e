package main

import (
	"bytes"
	"os"

	"github.com/scott-cotton/cli"
)

func ofFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	indent := cfg.Indent
	if indent == 0 {
		indent = 2
	}
	if len(args) == 0 {
		node, err := readDoc(cfg.MainConfig, "")
		if err != nil {
			return err
		}
		return writeDoc(cc.Out, node, cfg.outFormat(cfg.inFormat("")), indent)
	}
	for _, file := range args {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		f := cfg.outFormat(cfg.inFormat(file))
		if !cfg.Write {
			if err := writeDoc(cc.Out, node, f, indent); err != nil {
				return err
			}
			continue
		}
		buf := bytes.NewBuffer(nil)
		if err := writeDoc(buf, node, f, indent); err != nil {
			return err
		}
		if err := os.WriteFile(file, buf.Bytes(), 0644); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"io"

	"github.com/scott-cotton/cli"
)

func ofConvert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		out := cfg.outFormat(cfg.inFormat(file))
		if err := writeDoc(cc.Out, node, out, cfg.Indent); err != nil {
			return err
		}
		if cfg.Indent == 0 {
			io.WriteString(cc.Out, "\n")
		}
		if i < len(args)-1 {
			io.WriteString(cc.Out, "\n")
		}
	}
	return nil
}

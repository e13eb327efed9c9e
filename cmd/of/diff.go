package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/objform/objform/ir"
	"github.com/objform/objform/treediff"
)

func ofDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	var d *ir.Node
	if cfg.Key != "" {
		d, err = treediff.DiffArrayByKey(from, to, cfg.Key)
		if err != nil {
			return err
		}
	} else {
		d = treediff.Diff(from, to)
	}
	if d == nil {
		return nil
	}
	colors := treediff.NoColors()
	if cfg.colorized(cc.Out) {
		colors = treediff.NewColors()
	}
	return treediff.Render(cc.Out, d, colors)
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"

	"github.com/objform/objform/ir"
)

// ofEval evaluates an expression against each document. The document
// is bound as "doc" in the expression environment, next to any -e
// bindings; the result renders in the output format.
func ofEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval takes an expression", cli.ErrUsage)
	}
	src := args[0]
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, file := range files {
		node, err := readDoc(cfg.MainConfig, file)
		if err != nil {
			return err
		}
		env := map[string]any{"doc": ir.ToAny(node)}
		for k, v := range cfg.Env {
			env[k] = v
		}
		prg, err := expr.Compile(src, expr.Env(env))
		if err != nil {
			return err
		}
		res, err := expr.Run(prg, env)
		if err != nil {
			return err
		}
		out, err := ir.FromAny(res)
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

func envOptTypeFunc(env map[string]any) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -e wants name=val, got %q", cli.ErrUsage, a)
		}
		env[name] = val
		return 0, nil
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/objform/objform/format"
)

type MainConfig struct {
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	X bool `cli:"name=x aliases=xml desc='do i/o in xml'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	Indent int  `cli:"name=indent desc='spaces per nesting level on output'"`
	Color  bool `cli:"name=color desc='force color output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.J:
		return format.JSONFormat, true
	case cfg.X:
		return format.XMLFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	}
	return 0, false
}

// inFormat resolves the input format for a file: -I wins, then the
// -j/-x/-y flags, then the file suffix. JSON is the fallback.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	if path != "" {
		ext := filepath.Ext(path)
		for _, f := range format.AllFormats() {
			if f.Suffix() == ext {
				return f
			}
		}
		if ext == ".yml" {
			return format.YAMLFormat
		}
	}
	return format.JSONFormat
}

func (cfg *MainConfig) outFormat(in format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return in
}

func (cfg *MainConfig) colorized(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite files in place'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Key string `cli:"name=key desc='diff top-level arrays by this element member'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Env map[string]any

	Eval *cli.Command
}

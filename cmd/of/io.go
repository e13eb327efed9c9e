package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/objform/objform/format"
	"github.com/objform/objform/ir"
	"github.com/objform/objform/jsontext"
	"github.com/objform/objform/xmltext"
)

// readDoc reads one document, from stdin when path is "" or "-".
func readDoc(cfg *MainConfig, path string) (*ir.Node, error) {
	var (
		d   []byte
		err error
	)
	if path == "" || path == "-" {
		d, err = io.ReadAll(os.Stdin)
		path = ""
	} else {
		d, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return parseDoc(d, cfg.inFormat(path))
}

func parseDoc(d []byte, f format.Format) (*ir.Node, error) {
	switch {
	case f.IsJSON():
		return jsontext.Parse(d)
	case f.IsXML():
		return xmltext.Parse(d)
	case f.IsYAML():
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, err
		}
		return ir.FromAny(v)
	default:
		return nil, fmt.Errorf("%w: %v", format.ErrBadFormat, f)
	}
}

func writeDoc(w io.Writer, node *ir.Node, f format.Format, indent int) error {
	switch {
	case f.IsJSON():
		if err := jsontext.Encode(node, w, jsontext.Indent(indent)); err != nil {
			return err
		}
		if indent > 0 {
			_, err := io.WriteString(w, "\n")
			return err
		}
		return nil
	case f.IsXML():
		return xmltext.Encode(node, w, xmltext.Indent(indent))
	case f.IsYAML():
		d, err := yaml.Marshal(ir.ToAny(node))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: %v", format.ErrBadFormat, f)
	}
}

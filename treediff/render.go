package treediff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/objform/objform/ir"
	"github.com/objform/objform/jsontext"
)

type Colors struct {
	Del  func(format string, a ...any) string
	Ins  func(format string, a ...any) string
	Path func(format string, a ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Del:  color.RedString,
		Ins:  color.GreenString,
		Path: color.CyanString,
	}
}

func NoColors() *Colors {
	return &Colors{
		Del:  fmt.Sprintf,
		Ins:  fmt.Sprintf,
		Path: fmt.Sprintf,
	}
}

// Render prints a change tree one edit per path. Multiline string
// replacements render as an inline text diff instead of whole-value
// lines.
func Render(w io.Writer, diff *ir.Node, c *Colors) error {
	if c == nil {
		c = NoColors()
	}
	return render(w, diff, "$", c)
}

func render(w io.Writer, diff *ir.Node, path string, c *Colors) error {
	if diff == nil {
		return nil
	}
	if IsEdit(diff) {
		return renderEdit(w, diff, path, c)
	}
	switch diff.Type {
	case ir.ObjectType:
		for i, f := range diff.Fields {
			if err := render(w, diff.Values[i], path+"."+f.Name, c); err != nil {
				return err
			}
		}
	case ir.ArrayType:
		for i, v := range diff.Values {
			if v.Type == ir.NullType {
				continue
			}
			if err := render(w, v, fmt.Sprintf("%s[%d]", path, i), c); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderEdit(w io.Writer, edit *ir.Node, path string, c *Colors) error {
	from := ir.Get(edit, FromKey)
	to := ir.Get(edit, ToKey)
	if _, err := fmt.Fprintf(w, "%s:\n", c.Path("%s", path)); err != nil {
		return err
	}
	if textual(from) && textual(to) {
		return renderText(w, from.String, to.String, c)
	}
	if from != nil {
		if _, err := fmt.Fprintf(w, "%s\n", c.Del("- %s", jsontext.MustString(from))); err != nil {
			return err
		}
	}
	if to != nil {
		if _, err := fmt.Fprintf(w, "%s\n", c.Ins("+ %s", jsontext.MustString(to))); err != nil {
			return err
		}
	}
	return nil
}

func textual(n *ir.Node) bool {
	return n != nil && n.Type == ir.StringType && strings.Contains(n.String, "\n")
}

func renderText(w io.Writer, from, to string, c *Colors) error {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString(c.Del("%s", d.Text))
		case diffpatch.DiffInsert:
			b.WriteString(c.Ins("%s", d.Text))
		default:
			b.WriteString(d.Text)
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", b.String())
	return err
}

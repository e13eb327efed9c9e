package gomap_test

import (
	"testing"

	"github.com/objform/objform/format"
	"github.com/objform/objform/gomap"
	"github.com/objform/objform/ir"
	"github.com/objform/objform/schema"
)

type Profile struct {
	Name  string
	Email *string
	Phone *string
	Bio   *string
}

func profileRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	reg := schema.NewRegistry()
	reg.MustRegister(schema.Define("Profile", Profile{}).
		Prop(schema.Prop("Name")).
		Prop(schema.Prop("Email").IncludeNoneFor("contact")).
		Prop(schema.Prop("Phone").IncludeNone().OmitNoneFor("slim")).
		Prop(schema.Prop("Bio").IncludeNoneAs("contact", ir.FromString("n/a"))))
	return reg
}

func member(n *ir.Node, name string) (*ir.Node, bool) {
	if n == nil || n.Type != ir.ObjectType {
		return nil, false
	}
	for i, f := range n.Fields {
		if f.Name == name {
			return n.Values[i], true
		}
	}
	return nil, false
}

func TestViewRules(t *testing.T) {
	m := gomap.New(profileRegistry(t))
	bare := Profile{Name: "Ada"}

	cases := []struct {
		name  string
		opts  []gomap.Option
		email string // "omit", "null"
		phone string
		bio   string // "omit", "null", or the override text
	}{
		{
			name:  "no view",
			email: "omit",
			phone: "null",
			bio:   "omit",
		},
		{
			name:  "contact view",
			opts:  []gomap.Option{gomap.WithView("contact")},
			email: "null",
			phone: "null",
			bio:   "n/a",
		},
		{
			name:  "slim view",
			opts:  []gomap.Option{gomap.WithView("slim")},
			email: "omit",
			phone: "omit",
			bio:   "omit",
		},
		{
			name:  "unknown view falls back to defaults",
			opts:  []gomap.Option{gomap.WithView("audit")},
			email: "omit",
			phone: "null",
			bio:   "omit",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			node, err := m.ToIR(bare, format.JSONFormat, c.opts...)
			if err != nil {
				t.Fatalf("ToIR: %v", err)
			}
			check := func(name, want string) {
				t.Helper()
				got, ok := member(node, name)
				switch want {
				case "omit":
					if ok {
						t.Errorf("%s should be omitted, got %v", name, ir.ToAny(got))
					}
				case "null":
					if !ok || got.Type != ir.NullType {
						t.Errorf("%s should be null, got %v, present=%v", name, got, ok)
					}
				default:
					if !ok || got.Type != ir.StringType || got.String != want {
						t.Errorf("%s should be %q, got %v", name, want, got)
					}
				}
			}
			check("email", c.email)
			check("phone", c.phone)
			check("bio", c.bio)
		})
	}
}

func TestViewNeverSuppressesValues(t *testing.T) {
	m := gomap.New(profileRegistry(t))
	email := "ada@example.com"
	p := Profile{Name: "Ada", Email: &email}

	node, err := m.ToIR(p, format.JSONFormat, gomap.WithView("slim"))
	if err != nil {
		t.Fatalf("ToIR: %v", err)
	}
	got, ok := member(node, "email")
	if !ok || got.String != email {
		t.Errorf("present email must be emitted under any view, got %v", got)
	}
}

func TestViewIgnoredOnDeserialize(t *testing.T) {
	m := gomap.New(profileRegistry(t))
	node := ir.Object().
		Set("name", ir.FromString("Ada")).
		Set("phone", ir.Null())
	var out Profile
	if err := m.FromIR(node, &out, format.JSONFormat, gomap.WithView("slim")); err != nil {
		t.Fatalf("FromIR: %v", err)
	}
	if out.Phone != nil {
		t.Errorf("phone = %v", *out.Phone)
	}
}

func TestIncludeNoneXML(t *testing.T) {
	m := gomap.New(profileRegistry(t))
	doc, err := m.ToIR(Profile{Name: "Ada"}, format.XMLFormat)
	if err != nil {
		t.Fatalf("ToIR: %v", err)
	}
	elem := doc.Values[0]
	// IncludeNone renders an empty element.
	got, ok := member(elem, "phone")
	if !ok || got.Type != ir.NullType {
		t.Errorf("phone = %v, present=%v", got, ok)
	}
	if _, ok := member(elem, "email"); ok {
		t.Errorf("email should be omitted")
	}
}

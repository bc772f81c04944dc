package treefile

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"

	shadow "github.com/grindlemire/go-shadow"
)

// Generator writes Go source that builds a document's tree.
type Generator struct {
	buf     bytes.Buffer
	indent  int
	counter int

	// SkipImports uses format.Source instead of imports.Process (faster for tests)
	SkipImports bool
}

// NewGenerator creates a new code generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate produces a Go file in package pkg with a function named fn:
//
//	func fn(opts ...shadow.RootOption) (*shadow.RootNode, error)
//
// sourceFile is only used for the header comment.
func (g *Generator) Generate(doc *Document, pkg, fn, sourceFile string) ([]byte, error) {
	g.buf.Reset()
	g.indent = 0
	g.counter = 0

	g.writeln("// Code generated by shadow gen from %s. DO NOT EDIT.", sourceFile)
	g.writeln("")
	g.writeln("package %s", pkg)
	g.writeln("")
	g.writeln("import shadow %q", "github.com/grindlemire/go-shadow")
	g.writeln("")
	g.writeln("// %s builds the shadow tree described in %s.", fn, sourceFile)
	g.writeln("func %s(opts ...shadow.RootOption) (*shadow.RootNode, error) {", fn)
	g.indent++

	rootOpts, err := doc.Root.options()
	if err != nil {
		return nil, err
	}
	g.writeln("rootOpts := []shadow.RootOption{")
	g.indent++
	g.writeln("shadow.WithName(%q),", doc.Root.Name)
	if len(rootOpts) > 0 {
		g.writeln("shadow.WithRootStyle(%s),", joinCode(rootOpts))
	}
	if dir := baseDirections[doc.Direction]; dir.code != "" {
		g.writeln("shadow.WithBaseDirection(%s),", dir.code)
	}
	g.indent--
	g.writeln("}")
	g.writeln("root := shadow.NewRootNode(append(rootOpts, opts...)...)")

	minimum, maximum := doc.Constraints.sizes()
	g.writeln("if err := root.SetSizeConstraints(shadow.Size{Width: %d, Height: %d}, shadow.Size{Width: %s, Height: %s}); err != nil {",
		minimum.Width, minimum.Height, sizeCode(maximum.Width), sizeCode(maximum.Height))
	g.indent++
	g.writeln("return nil, err")
	g.indent--
	g.writeln("}")

	if err := g.generateChildren("root.Root()", doc.Root.Children); err != nil {
		return nil, err
	}

	g.writeln("return root, nil")
	g.indent--
	g.writeln("}")

	if g.SkipImports {
		return format.Source(g.buf.Bytes())
	}
	return imports.Process(sourceFile+".go", g.buf.Bytes(), nil)
}

func (g *Generator) generateChildren(parent string, specs []NodeSpec) error {
	for i := range specs {
		spec := &specs[i]
		opts, err := spec.options()
		if err != nil {
			return fmt.Errorf("node %q: %w", spec.Name, err)
		}

		v := fmt.Sprintf("n%d", g.counter)
		g.counter++
		args := strconv.Quote(spec.Name)
		ctor := "NewNode"
		if spec.Text != nil {
			ctor = "NewTextNode"
			args += ", " + strconv.Quote(*spec.Text)
		}
		if len(opts) > 0 {
			args += ", " + joinCode(opts)
		}
		g.writeln("%s := shadow.%s(%s)", v, ctor, args)
		g.writeln("if err := %s.AddChild(%s); err != nil {", parent, v)
		g.indent++
		g.writeln("return nil, err")
		g.indent--
		g.writeln("}")

		if err := g.generateChildren(v, spec.Children); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeln(tmpl string, args ...any) {
	g.buf.WriteString(strings.Repeat("\t", g.indent))
	fmt.Fprintf(&g.buf, tmpl, args...)
	g.buf.WriteByte('\n')
}

func joinCode(opts []option) string {
	codes := make([]string, len(opts))
	for i, o := range opts {
		codes[i] = o.code
	}
	return strings.Join(codes, ", ")
}

func sizeCode(n int) string {
	if n == shadow.Unbounded {
		return "shadow.Unbounded"
	}
	return strconv.Itoa(n)
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"

	shadow "github.com/grindlemire/go-shadow"
	"github.com/grindlemire/go-shadow/internal/config"
	"github.com/grindlemire/go-shadow/internal/treefile"
	"github.com/grindlemire/go-shadow/pkg/debug"
)

// layoutFlags holds the options shared by layout and relayout.
type layoutFlags struct {
	verbose bool
	dir     shadow.WritingDirection
	fit     bool
	rest    []string
}

func parseLayoutFlags(args []string) layoutFlags {
	var f layoutFlags
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			f.verbose = true
		case "--rtl":
			f.dir = shadow.RTL
		case "--ltr":
			f.dir = shadow.LTR
		case "--fit":
			f.fit = true
		default:
			f.rest = append(f.rest, arg)
		}
	}
	return f
}

// runLayout implements the layout subcommand.
func runLayout(cfg config.Config, args []string) error {
	flags := parseLayoutFlags(args)
	if len(flags.rest) != 1 {
		return fmt.Errorf("layout takes exactly one file")
	}

	root, _, err := loadTree(cfg, flags, flags.rest[0])
	if err != nil {
		return err
	}

	affected := shadow.NewAffectedSet()
	if err := root.RunLayoutPass(affected); err != nil {
		return err
	}
	if flags.verbose {
		fmt.Printf("constraints %s .. %s, direction %s\n",
			formatSize(root.MinimumSize()), formatSize(root.MaximumSize()), root.BaseDirection())
		fmt.Printf("%d node(s) affected\n", affected.Len())
	}
	fmt.Printf("intrinsic size %s\n", formatSize(root.IntrinsicSize()))
	printTree(os.Stdout, root, affected)
	return nil
}

// runRelayout implements the relayout subcommand.
func runRelayout(cfg config.Config, args []string) error {
	flags := parseLayoutFlags(args)
	if len(flags.rest) < 2 {
		return fmt.Errorf("relayout takes a file and at least one name=width,height edit")
	}

	root, nodes, err := loadTree(cfg, flags, flags.rest[0])
	if err != nil {
		return err
	}
	if err := root.RunLayoutPass(shadow.NewAffectedSet()); err != nil {
		return err
	}
	before := root.IntrinsicSize()

	for _, arg := range flags.rest[1:] {
		name, size, err := parseEdit(arg)
		if err != nil {
			return err
		}
		n, ok := nodes[name]
		if !ok {
			return fmt.Errorf("no node named %q", name)
		}
		if n == root.Root() {
			return fmt.Errorf("root %q has no content size", name)
		}
		n.SetContentSize(size.Width, size.Height)
	}

	affected := shadow.NewAffectedSet()
	if err := root.RunLayoutPass(affected); err != nil {
		return err
	}

	if after := root.IntrinsicSize(); after != before {
		fmt.Printf("intrinsic size %s -> %s\n", formatSize(before), formatSize(after))
	}
	printAffected(os.Stdout, affected)
	return nil
}

// loadTree parses the file and builds the tree, filling constraints and
// direction the document leaves open from flags, then config.
func loadTree(cfg config.Config, flags layoutFlags, path string) (*shadow.RootNode, map[string]*shadow.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := treefile.Parse(data)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	root, nodes, err := doc.Build(shadow.WithLogger(debug.Logger()))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	minimum, maximum := root.MinimumSize(), root.MaximumSize()
	if doc.Constraints.Min == nil {
		minimum = cfg.Layout.Minimum()
	}
	if doc.Constraints.Max == nil {
		maximum = cfg.Layout.Maximum()
	}
	if flags.fit {
		w, h, err := terminalSize(int(os.Stdout.Fd()))
		if err != nil {
			return nil, nil, fmt.Errorf("--fit: %w", err)
		}
		maximum = shadow.Size{Width: w, Height: h}
	}
	if err := root.SetSizeConstraints(minimum, maximum); err != nil {
		return nil, nil, err
	}

	dir := flags.dir
	if dir == shadow.Inherit && doc.Direction == "" {
		if d, ok := cfg.Layout.BaseDirection(); ok {
			dir = d
		}
	}
	if dir != shadow.Inherit {
		if err := root.SetBaseDirection(dir); err != nil {
			return nil, nil, err
		}
	}

	debug.Log("loaded %s: %d node(s)", path, len(nodes))
	return root, nodes, nil
}

// parseEdit parses "name=width,height".
func parseEdit(arg string) (string, shadow.Size, error) {
	name, dims, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", shadow.Size{}, fmt.Errorf("invalid edit %q: want name=width,height", arg)
	}
	ws, hs, ok := strings.Cut(dims, ",")
	if !ok {
		return "", shadow.Size{}, fmt.Errorf("invalid edit %q: want name=width,height", arg)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(ws))
	h, errH := strconv.Atoi(strings.TrimSpace(hs))
	if errW != nil || errH != nil || w < 0 || h < 0 {
		return "", shadow.Size{}, fmt.Errorf("invalid size in edit %q", arg)
	}
	return name, shadow.Size{Width: w, Height: h}, nil
}

var (
	changedColor = color.New(color.FgGreen, color.Bold)
	dimColor     = color.New(color.Faint)
)

// printTree prints every node indented by depth. Nodes in affected are
// marked with '*' and highlighted.
func printTree(w io.Writer, root *shadow.RootNode, affected shadow.AffectedSet) {
	var walk func(n *shadow.Node, depth int)
	walk = func(n *shadow.Node, depth int) {
		line := fmt.Sprintf("%s%s %s %s", strings.Repeat("  ", depth), n.Name(), formatRect(n.Frame()), n.ResolvedDirection())
		if affected.Contains(n) {
			changedColor.Fprintln(w, "* "+line)
		} else {
			dimColor.Fprintln(w, "  "+line)
		}
		for _, child := range n.Children() {
			walk(child, depth+1)
		}
	}
	walk(root.Root(), 0)
}

// printAffected prints the affected nodes sorted by name.
func printAffected(w io.Writer, affected shadow.AffectedSet) {
	if affected.Len() == 0 {
		fmt.Fprintln(w, "no nodes affected")
		return
	}
	for _, n := range affected.Nodes() {
		changedColor.Fprintf(w, "%s", n.Name())
		fmt.Fprintf(w, " %s\n", formatRect(n.Frame()))
	}
}

func formatRect(r shadow.Rect) string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}

func formatSize(s shadow.Size) string {
	dim := func(n int) string {
		if n == shadow.Unbounded {
			return "inf"
		}
		return strconv.Itoa(n)
	}
	return dim(s.Width) + "x" + dim(s.Height)
}

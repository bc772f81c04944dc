package treefile

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	shadow "github.com/grindlemire/go-shadow"
)

// option is a node option together with the Go expression that builds it,
// so Build and Generate share one translation of the description.
type option struct {
	apply shadow.NodeOption
	code  string
}

func applyAll(opts []option) []shadow.NodeOption {
	out := make([]shadow.NodeOption, len(opts))
	for i, o := range opts {
		out[i] = o.apply
	}
	return out
}

type enum[T any] struct {
	v    T
	code string
}

var flexDirections = map[string]enum[shadow.FlexDirection]{
	"row":            {shadow.Row, "shadow.Row"},
	"column":         {shadow.Column, "shadow.Column"},
	"row-reverse":    {shadow.RowReverse, "shadow.RowReverse"},
	"column-reverse": {shadow.ColumnReverse, "shadow.ColumnReverse"},
}

var justifyModes = map[string]enum[shadow.Justify]{
	"start":         {shadow.JustifyStart, "shadow.JustifyStart"},
	"end":           {shadow.JustifyEnd, "shadow.JustifyEnd"},
	"center":        {shadow.JustifyCenter, "shadow.JustifyCenter"},
	"space-between": {shadow.JustifySpaceBetween, "shadow.JustifySpaceBetween"},
	"space-around":  {shadow.JustifySpaceAround, "shadow.JustifySpaceAround"},
	"space-evenly":  {shadow.JustifySpaceEvenly, "shadow.JustifySpaceEvenly"},
}

var alignModes = map[string]enum[shadow.Align]{
	"start":   {shadow.AlignStart, "shadow.AlignStart"},
	"end":     {shadow.AlignEnd, "shadow.AlignEnd"},
	"center":  {shadow.AlignCenter, "shadow.AlignCenter"},
	"stretch": {shadow.AlignStretch, "shadow.AlignStretch"},
}

var nodeDirections = map[string]enum[shadow.WritingDirection]{
	"inherit": {shadow.Inherit, "shadow.Inherit"},
	"ltr":     {shadow.LTR, "shadow.LTR"},
	"rtl":     {shadow.RTL, "shadow.RTL"},
}

// baseDirections maps the document-level direction. The empty entry means
// "from the locale" and has no code.
var baseDirections = map[string]enum[shadow.WritingDirection]{
	"":    {},
	"ltr": {shadow.LTR, "shadow.LTR"},
	"rtl": {shadow.RTL, "shadow.RTL"},
}

func lookup[T any](table map[string]enum[T], kind, s string) (enum[T], error) {
	e, ok := table[s]
	if !ok {
		return e, fmt.Errorf("unknown %s %q", kind, s)
	}
	return e, nil
}

// options translates the node description into options, in a fixed order.
func (n *NodeSpec) options() ([]option, error) {
	opts, err := n.Style.options()
	if err != nil {
		return nil, err
	}
	if n.Content != nil {
		w, h := n.Content[0], n.Content[1]
		if w < 0 || h < 0 {
			return nil, fmt.Errorf("negative content size")
		}
		opts = append(opts, option{shadow.WithContentSize(w, h), fmt.Sprintf("shadow.WithContentSize(%d, %d)", w, h)})
	}
	if n.Natural {
		opts = append(opts, option{shadow.WithNaturalDirection(), "shadow.WithNaturalDirection()"})
	}
	return opts, nil
}

func (s StyleSpec) options() ([]option, error) {
	var opts []option
	add := func(apply shadow.NodeOption, format string, args ...any) {
		opts = append(opts, option{apply, fmt.Sprintf(format, args...)})
	}

	dims := []struct {
		v       *ValueSpec
		fixed   func(int) shadow.NodeOption
		percent func(float64) shadow.NodeOption
		name    string
	}{
		{s.Width, shadow.WithWidth, shadow.WithWidthPercent, "Width"},
		{s.Height, shadow.WithHeight, shadow.WithHeightPercent, "Height"},
	}
	for _, d := range dims {
		if d.v == nil {
			continue
		}
		switch d.v.Unit {
		case shadow.UnitFixed:
			add(d.fixed(int(d.v.Amount)), "shadow.With%s(%d)", d.name, int(d.v.Amount))
		case shadow.UnitPercent:
			add(d.percent(d.v.Amount), "shadow.With%sPercent(%s)", d.name, formatFloat(d.v.Amount))
		}
	}

	limits := []struct {
		v    *int
		opt  func(int) shadow.NodeOption
		name string
	}{
		{s.MinWidth, shadow.WithMinWidth, "MinWidth"},
		{s.MinHeight, shadow.WithMinHeight, "MinHeight"},
		{s.MaxWidth, shadow.WithMaxWidth, "MaxWidth"},
		{s.MaxHeight, shadow.WithMaxHeight, "MaxHeight"},
	}
	for _, l := range limits {
		if l.v == nil {
			continue
		}
		if *l.v < 0 {
			return nil, fmt.Errorf("negative %s", l.name)
		}
		add(l.opt(*l.v), "shadow.With%s(%d)", l.name, *l.v)
	}

	if s.FlexDirection != "" {
		e, err := lookup(flexDirections, "flex direction", s.FlexDirection)
		if err != nil {
			return nil, err
		}
		add(shadow.WithFlexDirection(e.v), "shadow.WithFlexDirection(%s)", e.code)
	}
	if s.Justify != "" {
		e, err := lookup(justifyModes, "justify mode", s.Justify)
		if err != nil {
			return nil, err
		}
		add(shadow.WithJustify(e.v), "shadow.WithJustify(%s)", e.code)
	}
	if s.Align != "" {
		e, err := lookup(alignModes, "align mode", s.Align)
		if err != nil {
			return nil, err
		}
		add(shadow.WithAlign(e.v), "shadow.WithAlign(%s)", e.code)
	}
	if s.AlignSelf != "" {
		e, err := lookup(alignModes, "align mode", s.AlignSelf)
		if err != nil {
			return nil, err
		}
		add(shadow.WithAlignSelf(e.v), "shadow.WithAlignSelf(%s)", e.code)
	}
	if s.Gap != nil {
		if *s.Gap < 0 {
			return nil, fmt.Errorf("negative gap")
		}
		add(shadow.WithGap(*s.Gap), "shadow.WithGap(%d)", *s.Gap)
	}
	if s.Grow != nil {
		if !finite(*s.Grow) || *s.Grow < 0 {
			return nil, fmt.Errorf("invalid grow %v", *s.Grow)
		}
		add(shadow.WithFlexGrow(*s.Grow), "shadow.WithFlexGrow(%s)", formatFloat(*s.Grow))
	}
	if s.Shrink != nil {
		if !finite(*s.Shrink) || *s.Shrink < 0 {
			return nil, fmt.Errorf("invalid shrink %v", *s.Shrink)
		}
		add(shadow.WithFlexShrink(*s.Shrink), "shadow.WithFlexShrink(%s)", formatFloat(*s.Shrink))
	}
	if s.Padding != nil {
		if err := checkEdges(s.Padding.Edges, "padding"); err != nil {
			return nil, err
		}
		add(shadow.WithPadding(s.Padding.Edges), "shadow.WithPadding(%s)", edgesCode(s.Padding.Edges))
	}
	if s.Margin != nil {
		if err := checkEdges(s.Margin.Edges, "margin"); err != nil {
			return nil, err
		}
		add(shadow.WithMargin(s.Margin.Edges), "shadow.WithMargin(%s)", edgesCode(s.Margin.Edges))
	}
	if s.Direction != "" {
		e, err := lookup(nodeDirections, "direction", s.Direction)
		if err != nil {
			return nil, err
		}
		add(shadow.WithDirection(e.v), "shadow.WithDirection(%s)", e.code)
	}
	return opts, nil
}

func checkEdges(e shadow.Edges, kind string) error {
	if e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 || e.Start < 0 || e.End < 0 {
		return fmt.Errorf("negative %s", kind)
	}
	return nil
}

func edgesCode(e shadow.Edges) string {
	return fmt.Sprintf("shadow.Edges{Top: %d, Right: %d, Bottom: %d, Left: %d, Start: %d, End: %d}",
		e.Top, e.Right, e.Bottom, e.Left, e.Start, e.End)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// formatFloat prints f as a Go float literal.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

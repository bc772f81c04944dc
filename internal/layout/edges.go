package layout

// Edges represents values for the sides of a box.
//
// Top, Right, Bottom and Left are physical sides. Start and End are logical
// sides that map onto Left/Right according to the writing direction: Start
// is Left in LTR and Right in RTL. Logical values add to the physical ones.
type Edges struct {
	Top, Right, Bottom, Left int
	Start, End               int
}

// EdgeAll creates Edges with the same value on all physical sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// EdgeStartEnd creates Edges with only logical horizontal values.
func EdgeStartEnd(start, end int) Edges {
	return Edges{Start: start, End: end}
}

// Physical folds Start/End into Left/Right for the given direction.
// Inherit is treated as LTR.
func (e Edges) Physical(dir WritingDirection) Edges {
	p := Edges{Top: e.Top, Right: e.Right, Bottom: e.Bottom, Left: e.Left}
	if dir == RTL {
		p.Left += e.End
		p.Right += e.Start
	} else {
		p.Left += e.Start
		p.Right += e.End
	}
	return p
}

// Horizontal returns the sum of all horizontal sides, physical and logical.
// The sum does not depend on direction.
func (e Edges) Horizontal() int {
	return e.Left + e.Right + e.Start + e.End
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

func (e Edges) negative() bool {
	return e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0 || e.Start < 0 || e.End < 0
}

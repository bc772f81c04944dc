package layout

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Children laid out along the inline axis (start to end)
	Column                             // Children laid out top-to-bottom
	RowReverse                         // Children laid out end to start
	ColumnReverse                      // Children laid out bottom-to-top
)

func (d FlexDirection) isRow() bool {
	return d == Row || d == RowReverse
}

func (d FlexDirection) isReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// WritingDirection is the base direction used to resolve Start/End edges
// and the inline order of row children.
type WritingDirection uint8

const (
	Inherit WritingDirection = iota // Use the parent's resolved direction
	LTR                             // Left to right
	RTL                             // Right to left
)

func (d WritingDirection) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	default:
		return "inherit"
	}
}

// resolveDirection returns own unless it is Inherit.
func resolveDirection(own, parent WritingDirection) WritingDirection {
	if own == Inherit {
		return parent
	}
	return own
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignItems     Align
	Gap            int // Space between children (main axis only)

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges

	// Direction overrides the inherited writing direction for this subtree.
	Direction WritingDirection
}

// DefaultStyle returns a Style with sensible defaults.
func DefaultStyle() Style {
	return Style{
		Width:         Auto(),
		Height:        Auto(),
		MinWidth:      Fixed(0),
		MinHeight:     Fixed(0),
		MaxWidth:      Auto(), // No maximum
		MaxHeight:     Auto(), // No maximum
		FlexDirection: Column,
		AlignItems:    AlignStretch,
		FlexShrink:    1.0,
	}
}

package courbe

import (
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// Role selects a text color resolved by the hosting Scheme.
type Role int

const (
	PrimaryText Role = iota
	SecondaryText
	customText
)

// Padding is the space around a label, in points.
type Padding struct {
	Top      int
	Leading  int
	Bottom   int
	Trailing int
}

// Styling is the (size, padding, color) triple derived from a
// LabelType. Size is in points; terminal hosts map it to emphasis
// rather than glyph size.
type Styling struct {
	Size   float64
	Pad    Padding
	Role   Role
	Custom color.Color
}

// Color resolves the styling color against a scheme. Custom label types
// carry their own color and bypass the scheme.
func (styling Styling) Color(scheme Scheme) color.Color {
	if styling.Role == customText {
		return styling.Custom
	}
	return scheme.Resolve(styling.Role)
}

// LabelType tags a label with preset or custom styling, fixed at label
// construction. The zero value is Title.
type LabelType struct {
	kind   kind
	custom Styling
}

type kind int

const (
	titleKind kind = iota
	subTitleKind
	largeTitleKind
	legendKind
	customKind
)

var (
	Title      = LabelType{kind: titleKind}
	SubTitle   = LabelType{kind: subTitleKind}
	LargeTitle = LabelType{kind: largeTitleKind}
	Legend     = LabelType{kind: legendKind}
)

// Custom builds a label type carrying explicit styling values.
func Custom(size float64, pad Padding, col color.Color) LabelType {
	return LabelType{
		kind:   customKind,
		custom: Styling{Size: size, Pad: pad, Role: customText, Custom: col},
	}
}

// Styling maps a label type to its (size, padding, color) triple.
func (lt LabelType) Styling() Styling {

	switch lt.kind {
	case subTitleKind:
		return Styling{Size: 24, Pad: Padding{Top: 8, Leading: 8, Trailing: 8}, Role: PrimaryText}
	case largeTitleKind:
		return Styling{Size: 38, Pad: Padding{Top: 24, Leading: 8, Trailing: 8}, Role: PrimaryText}
	case legendKind:
		return Styling{Size: 14, Pad: Padding{Top: 4, Leading: 8, Trailing: 8}, Role: SecondaryText}
	case customKind:
		return lt.custom
	default:
		return Styling{Size: 32, Pad: Padding{Top: 16, Leading: 8, Trailing: 8}, Role: PrimaryText}
	}
}

// ParseLabelType resolves a preset label type by name; empty means
// Title.
func ParseLabelType(name string) (lt LabelType, err error) {

	switch strings.ToLower(name) {
	case "", "title":
		lt = Title
	case "subtitle":
		lt = SubTitle
	case "largetitle":
		lt = LargeTitle
	case "legend":
		lt = Legend
	default:
		err = errors.Errorf("unknown label type: %s", name)
	}
	return
}

package entity

// GenericSansSerif is the generic family class used when none of the
// concrete families resolve.
const GenericSansSerif = "sans-serif"

// Point sizes applied to plot elements when a preferred font is selected.
// Fixed in this version, not user-configurable per element.
const (
	DefaultTitleSize       = 12
	DefaultLabelSize       = 10
	DefaultTickLabelSize   = 9
	DefaultFigureTitleSize = 13
)

// StyleBatch is a set of rendering settings applied together to the plotting
// defaults. FamilyList holds concrete family names in preference order with
// the selected font first; Family is the generic fallback class. Sizes are in
// printer's points.
type StyleBatch struct {
	Family          string
	FamilyList      []string
	TitleSize       float64
	LabelSize       float64
	TickLabelSize   float64
	FigureTitleSize float64
}

// NewStyleBatch builds the fixed style batch for a selected font family.
func NewStyleBatch(family string) StyleBatch {
	return StyleBatch{
		Family:          GenericSansSerif,
		FamilyList:      []string{family},
		TitleSize:       DefaultTitleSize,
		LabelSize:       DefaultLabelSize,
		TickLabelSize:   DefaultTickLabelSize,
		FigureTitleSize: DefaultFigureTitleSize,
	}
}

// Selected returns the concrete family the batch was built for, or the
// generic class when the family list is empty.
func (b StyleBatch) Selected() string {
	if len(b.FamilyList) == 0 {
		return b.Family
	}
	return b.FamilyList[0]
}

package reader

import "math"

const (
	DefaultFontSize   = 36
	MinFontSize       = 20
	MaxFontSize       = 60
	FontSizeStep      = 2
	DefaultLineHeight = 2.5
	MinLineHeight     = 1.5
	MaxLineHeight     = 5.0
	LineHeightStep    = 0.2

	minColumnWidth = 20
)

// Appearance holds the per-session reading settings. It is never
// persisted.
type Appearance struct {
	FontSize   int
	LineHeight float64
	Bold       bool
	Dark       bool
}

func DefaultAppearance() Appearance {
	return Appearance{FontSize: DefaultFontSize, LineHeight: DefaultLineHeight}
}

func (a *Appearance) IncreaseFont() {
	a.FontSize = min(MaxFontSize, a.FontSize+FontSizeStep)
}

func (a *Appearance) DecreaseFont() {
	a.FontSize = max(MinFontSize, a.FontSize-FontSizeStep)
}

func (a *Appearance) IncreaseLineHeight() {
	a.LineHeight = roundTenth(math.Min(MaxLineHeight, a.LineHeight+LineHeightStep))
}

func (a *Appearance) DecreaseLineHeight() {
	a.LineHeight = roundTenth(math.Max(MinLineHeight, a.LineHeight-LineHeightStep))
}

func (a *Appearance) ToggleBold() { a.Bold = !a.Bold }
func (a *Appearance) ToggleDark() { a.Dark = !a.Dark }

// ColumnWidth maps the font size onto a text column inside avail cells:
// larger type means fewer cells per line.
func (a Appearance) ColumnWidth(avail int) int {
	if avail <= 0 {
		return 80
	}
	size := a.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	w := avail * DefaultFontSize / size
	if w > avail {
		w = avail
	}
	if w < minColumnWidth {
		w = min(minColumnWidth, avail)
	}
	return w
}

// VerseGap is the number of blank lines between verses.
func (a Appearance) VerseGap() int {
	gap := int(math.Round(a.LineHeight)) - 1
	if gap < 0 {
		return 0
	}
	return gap
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

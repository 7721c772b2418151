package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	rosewater lipgloss.Color
	mauve     lipgloss.Color
	red       lipgloss.Color
	peach     lipgloss.Color
	yellow    lipgloss.Color
	green     lipgloss.Color
	teal      lipgloss.Color
	lavender  lipgloss.Color
	text      lipgloss.Color
	subtext0  lipgloss.Color
	subtext1  lipgloss.Color
	overlay1  lipgloss.Color
	surface0  lipgloss.Color
	surface1  lipgloss.Color
}

// Catppuccin Mocha.
var mocha = palette{
	rosewater: "#f5e0dc",
	mauve:     "#cba6f7",
	red:       "#f38ba8",
	peach:     "#fab387",
	yellow:    "#f9e2af",
	green:     "#a6e3a1",
	teal:      "#94e2d5",
	lavender:  "#b4befe",
	text:      "#cdd6f4",
	subtext0:  "#a6adc8",
	subtext1:  "#bac2de",
	overlay1:  "#7f849c",
	surface0:  "#313244",
	surface1:  "#45475a",
}

// Catppuccin Latte.
var latte = palette{
	rosewater: "#dc8a78",
	mauve:     "#8839ef",
	red:       "#d20f39",
	peach:     "#fe640b",
	yellow:    "#df8e1d",
	green:     "#40a02b",
	teal:      "#179299",
	lavender:  "#7287fd",
	text:      "#4c4f69",
	subtext0:  "#6c6f85",
	subtext1:  "#5c5f77",
	overlay1:  "#8c8fa1",
	surface0:  "#ccd0da",
	surface1:  "#bcc0cc",
}

type Theme struct {
	Dark bool

	Title     lipgloss.Style
	NavActive lipgloss.Style
	NavIdle   lipgloss.Style
	Section   lipgloss.Style
	MetaLabel lipgloss.Style
	MetaValue lipgloss.Style
	StateIdle lipgloss.Style
	StateWarn lipgloss.Style
	StateLoad lipgloss.Style

	ActiveLine   lipgloss.Style
	Opening      lipgloss.Style
	Verse        lipgloss.Style
	VerseNumber  lipgloss.Style
	CursorVerse  lipgloss.Style
	Bookmarked   lipgloss.Style
	BookmarkBox  lipgloss.Style
	Modal        lipgloss.Style
	ModalTitle   lipgloss.Style
	Explanation  lipgloss.Style
	ErrorText    lipgloss.Style
	Meccan       lipgloss.Style
	Medinan      lipgloss.Style
	SettingsCard lipgloss.Style

	HadithCard      lipgloss.Style
	HadithWeakCard  lipgloss.Style
	GradeAuthentic  lipgloss.Style
	GradeWeak       lipgloss.Style
	SourceAuthentic lipgloss.Style
	SourceWeak      lipgloss.Style
}

// Default is the dark theme.
func Default() Theme {
	return build(mocha, true)
}

func Light() Theme {
	return build(latte, false)
}

// ForAppearance picks the palette for the reader's dark-mode setting.
func ForAppearance(dark bool) Theme {
	if dark {
		return Default()
	}
	return Light()
}

func build(p palette, dark bool) Theme {
	return Theme{
		Dark:      dark,
		Title:     lipgloss.NewStyle().Bold(true).Foreground(p.mauve),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(p.yellow).Background(p.surface0).Padding(0, 1),
		NavIdle:   lipgloss.NewStyle().Foreground(p.subtext0).Padding(0, 1),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(p.teal),
		MetaLabel: lipgloss.NewStyle().Foreground(p.overlay1),
		MetaValue: lipgloss.NewStyle().Foreground(p.subtext1),
		StateIdle: lipgloss.NewStyle().Foreground(p.green),
		StateWarn: lipgloss.NewStyle().Foreground(p.red),
		StateLoad: lipgloss.NewStyle().Foreground(p.peach),

		ActiveLine:  lipgloss.NewStyle().Background(p.surface0).Foreground(p.text),
		Opening:     lipgloss.NewStyle().Bold(true).Foreground(p.teal),
		Verse:       lipgloss.NewStyle().Foreground(p.text),
		VerseNumber: lipgloss.NewStyle().Foreground(p.yellow),
		CursorVerse: lipgloss.NewStyle().Background(p.surface0).Foreground(p.text),
		Bookmarked: lipgloss.NewStyle().
			Background(p.surface1).
			Foreground(p.rosewater),
		BookmarkBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.yellow).
			Padding(0, 1),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.teal).
			Padding(0, 2),
		ModalTitle:  lipgloss.NewStyle().Bold(true).Foreground(p.yellow),
		Explanation: lipgloss.NewStyle().Foreground(p.subtext1),
		ErrorText:   lipgloss.NewStyle().Foreground(p.red),
		Meccan:      lipgloss.NewStyle().Foreground(p.peach),
		Medinan:     lipgloss.NewStyle().Foreground(p.lavender),
		SettingsCard: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.overlay1).
			Padding(0, 1),

		HadithCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.green).
			Padding(0, 2),
		HadithWeakCard: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.red).
			Padding(0, 2),
		GradeAuthentic:  lipgloss.NewStyle().Bold(true).Foreground(p.green),
		GradeWeak:       lipgloss.NewStyle().Bold(true).Foreground(p.red),
		SourceAuthentic: lipgloss.NewStyle().Foreground(p.yellow),
		SourceWeak:      lipgloss.NewStyle().Foreground(p.red),
	}
}

// HadithFrame returns the card style for a record.
func (t Theme) HadithFrame(weak bool) lipgloss.Style {
	if weak {
		return t.HadithWeakCard
	}
	return t.HadithCard
}

func (t Theme) StyleGrade(grade string, weak bool) string {
	if grade == "" {
		return grade
	}
	if weak {
		return t.GradeWeak.Render(grade)
	}
	return t.GradeAuthentic.Render(grade)
}

func (t Theme) StyleSource(source string, weak bool) string {
	if weak {
		return t.SourceWeak.Render(source)
	}
	return t.SourceAuthentic.Render(source)
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}

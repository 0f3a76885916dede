package shop

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#cba6f7") // Mauve
	accentColor  = lipgloss.Color("#f5c2e7") // Pink
	priceColor   = lipgloss.Color("#a6e3a1") // Green
	starColor    = lipgloss.Color("#f9e2af") // Yellow
	errorColor   = lipgloss.Color("#f38ba8") // Red
	infoColor    = lipgloss.Color("#89dceb") // Sky
	textColor    = lipgloss.Color("#cdd6f4")
	mutedColor   = lipgloss.Color("#7f849c")
	surfaceColor = lipgloss.Color("#313244")

	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingRight(2)

	menuStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	menuActiveStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Underline(true)

	headerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(surfaceColor).
			MarginBottom(1)

	heroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			MarginBottom(1)

	taglineStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(textColor).
			MarginBottom(1)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				MarginTop(1)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(surfaceColor).
			Padding(0, 1).
			MarginRight(1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	artistStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	priceStyle = lipgloss.NewStyle().
			Foreground(priceColor).
			Bold(true)

	starStyle = lipgloss.NewStyle().
			Foreground(starColor)

	bodyStyle = lipgloss.NewStyle().
			Foreground(textColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Bold(true).
			Width(10)

	focusedLabelStyle = labelStyle.
				Foreground(accentColor)

	// Cart overlay styles
	cartBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)

	cartLineStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(2)

	cartSelectedLineStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	cartTotalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(priceColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(surfaceColor).
			MarginTop(1)

	// Banner styles
	errorBannerStyle = lipgloss.NewStyle().
				Foreground(errorColor).
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(errorColor)

	infoBannerStyle = lipgloss.NewStyle().
			Foreground(infoColor).
			Padding(0, 1).
			MarginBottom(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(infoColor)

	footerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(surfaceColor).
			MarginTop(1)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true).
			PaddingTop(1).
			PaddingBottom(1)
)

// glyphs are the decorative characters used by the views.
type glyphs struct {
	Cart      string
	Bullet    string
	Cursor    string
	StarFull  string
	StarEmpty string
	Separator string
}

func unicodeGlyphs() glyphs {
	return glyphs{Cart: "🛒", Bullet: "•", Cursor: "▸", StarFull: "★", StarEmpty: "☆", Separator: "·"}
}

func asciiGlyphs() glyphs {
	return glyphs{Cart: "Cart:", Bullet: "-", Cursor: ">", StarFull: "*", StarEmpty: ".", Separator: "|"}
}

func newGalleryDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = d.Styles.SelectedTitle.
		Foreground(accentColor).
		BorderLeftForeground(primaryColor)
	d.Styles.SelectedDesc = d.Styles.SelectedDesc.
		Foreground(priceColor).
		BorderLeftForeground(primaryColor)
	d.Styles.NormalTitle = d.Styles.NormalTitle.Foreground(textColor)
	d.Styles.NormalDesc = d.Styles.NormalDesc.Foreground(mutedColor)
	return d
}

func styleGallery(l *list.Model) {
	l.Styles.Title = l.Styles.Title.
		Foreground(textColor).
		Background(surfaceColor)
	l.Styles.FilterPrompt = l.Styles.FilterPrompt.Foreground(accentColor)
	l.Styles.FilterCursor = l.Styles.FilterCursor.Foreground(accentColor)
	l.FilterInput.PromptStyle = l.Styles.FilterPrompt
	l.FilterInput.Cursor.Style = l.Styles.FilterCursor
}

package main

import (
	"strings"

	"git.sr.ht/~rockorager/gloss"
)

const columnWidth = 30

var (
	subtle    = gloss.Adaptive("#D9DCCF", "#383838")
	highlight = gloss.Adaptive("#874BFD", "#7D56F4")
	special   = gloss.Adaptive("#43BF6D", "#73F59F")

	activeTabBorder = gloss.Border{
		Top:         "─",
		Bottom:      " ",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┘",
		BottomRight: "└",
	}

	tabBorder = gloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "┴",
		BottomRight: "┴",
	}
)

// styles are built from a Renderer so that adaptive colors resolve for the
// detected background
type styles struct {
	r gloss.Renderer

	divider string
	url     gloss.Style

	tab       gloss.Style
	activeTab gloss.Style
	tabGap    gloss.Style

	title gloss.Style
	desc  gloss.Style
	info  gloss.Style

	dialogBox    gloss.Style
	button       gloss.Style
	activeButton gloss.Style

	list       gloss.Style
	listHeader gloss.Style
	listItem   gloss.Style
	checkMark  string
	listDone   gloss.Style

	history gloss.Style

	statusNugget gloss.Style
	statusBar    gloss.Style
	status       gloss.Style
	encoding     gloss.Style
	statusText   gloss.Style
	fishCake     gloss.Style

	doc gloss.Style
}

func newStyles(r gloss.Renderer) styles {
	s := styles{r: r}
	base := r.NewStyle()

	s.divider = base.Padding(0, 1).Foreground(subtle).Render("•")
	s.url = base.Foreground(special)

	s.tab = base.
		Border(tabBorder, true).
		BorderForeground(highlight).
		Padding(0, 1)
	s.activeTab = s.tab.Extend(base.Border(activeTabBorder, true))
	s.tabGap = s.tab.Extend(base.BorderTop(false).BorderLeft(false).BorderRight(false))

	s.title = base.
		MarginLeft(1).
		MarginRight(5).
		Padding(0, 1).
		Italic(true).
		Foreground(r.Color("#FFF7DB")).
		SetString("Gloss")
	s.desc = base.MarginTop(1)
	s.info = base.
		BorderStyle(gloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(subtle)

	s.dialogBox = base.
		Border(gloss.RoundedBorder()).
		BorderForeground(r.Color("#874BFD")).
		Padding(1, 0)
	s.button = base.
		Foreground(r.Color("#FFF7DB")).
		Background(r.Color("#888B7E")).
		Padding(0, 3).
		MarginTop(1)
	s.activeButton = s.button.Extend(base.
		Background(r.Color("#F25D94")).
		MarginRight(2).
		Underline(true))

	s.list = base.
		Border(gloss.NormalBorder(), false, true, false, false).
		BorderForeground(subtle).
		MarginRight(2).
		Height(8).
		Width(columnWidth + 1)
	s.listHeader = base.
		BorderStyle(gloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(subtle).
		MarginRight(2)
	s.listItem = base.PaddingLeft(2)
	s.checkMark = base.Foreground(special).PaddingRight(1).Render("✓")
	s.listDone = base.
		Strikethrough(true).
		Foreground(r.Adaptive("#969B86", "#696969"))

	s.history = base.
		Align(gloss.Left).
		Foreground(r.Color("#FAFAFA")).
		Background(highlight).
		Margin(1, 3, 0, 0).
		Padding(1, 2).
		Height(19).
		Width(columnWidth)

	s.statusNugget = base.
		Foreground(r.Color("#FFFDF5")).
		Padding(0, 1)
	s.statusBar = base.
		Foreground(r.Adaptive("#343433", "#C1C6B2")).
		Background(r.Adaptive("#D9DCCF", "#353533"))
	s.status = s.statusBar.Extend(base.
		Foreground(r.Color("#FFFDF5")).
		Background(r.Color("#FF5F87")).
		Padding(0, 1).
		MarginRight(1))
	s.encoding = s.statusNugget.Extend(base.
		Background(r.Color("#A550DF")).
		Align(gloss.Right))
	s.statusText = s.statusBar
	s.fishCake = s.statusNugget.Extend(base.Background(r.Color("#6124DF")))

	s.doc = base.Padding(1, 2, 1, 2)
	return s
}

func (s styles) done(item string) string {
	return s.checkMark + s.listDone.Render(item)
}

func (s styles) tabs(width int) string {
	row := s.r.JoinHorizontal(gloss.Top,
		s.activeTab.Render("Gloss"),
		s.tab.Render("Blush"),
		s.tab.Render("Eye Shadow"),
		s.tab.Render("Mascara"),
		s.tab.Render("Foundation"),
	)
	gapWidth := width - s.r.Width(row) - 2
	if gapWidth < 0 {
		gapWidth = 0
	}
	gap := s.tabGap.Render(strings.Repeat(" ", gapWidth))
	return s.r.JoinHorizontal(gloss.Bottom, row, gap)
}

func colorGrid(xSteps int, ySteps int) [][]gloss.Color {
	return gloss.ColorGrid(xSteps, ySteps,
		gloss.HexColor(0xF25D94),
		gloss.HexColor(0xEDFF82),
		gloss.HexColor(0x643AFF),
		gloss.HexColor(0x14F9D5),
	)
}

func (s styles) header() string {
	const offset = 2
	rows := []string{}
	for i, v := range colorGrid(1, 5) {
		rows = append(rows, s.title.
			MarginLeft(i*offset).
			Background(v[0]).
			Render())
	}
	title := strings.Join(rows, "\n")

	desc := s.r.JoinVertical(gloss.Left,
		s.desc.Render("Style Definitions for Nice Terminal Layouts"),
		s.info.Render("From Charm"+s.divider+s.url.Render("https://git.sr.ht/~rockorager/gloss")),
	)
	return s.r.JoinHorizontal(gloss.Top, title, desc)
}

func (s styles) dialog(width int) string {
	okButton := s.activeButton.Render("Yes")
	cancelButton := s.button.Render("Maybe")

	question := s.r.NewStyle().
		Width(50).
		Align(gloss.Center).
		Render("Are you sure you want to eat marmalade?")
	buttons := s.r.JoinHorizontal(gloss.Top, okButton, cancelButton)
	ui := s.r.JoinVertical(gloss.Center, question, buttons)

	return s.r.Place(width, 9,
		gloss.Center, gloss.Center,
		s.dialogBox.Render(ui),
		gloss.WithWhitespaceChars("猫咪"),
		gloss.WithWhitespaceForeground(subtle),
	)
}

func (s styles) lists() string {
	var colors strings.Builder
	for i, row := range colorGrid(14, 8) {
		if i > 0 {
			colors.WriteString("\n")
		}
		for _, c := range row {
			colors.WriteString(s.r.NewStyle().Background(c).Render("  "))
		}
	}

	lists := s.r.JoinHorizontal(gloss.Top,
		s.list.Render(
			s.r.JoinVertical(gloss.Left,
				s.listHeader.Render("Citrus Fruits to Try"),
				s.done("Grapefruit"),
				s.done("Yuzu"),
				s.listItem.Render("Citron"),
				s.listItem.Render("Kumquat"),
				s.listItem.Render("Pomelo"),
			),
		),
		s.list.Width(columnWidth).Render(
			s.r.JoinVertical(gloss.Left,
				s.listHeader.Render("Actual Lip Gloss Vendors"),
				s.listItem.Render("Glossier"),
				s.listItem.Render("Claire‘s Boutique"),
				s.done("Nyx"),
				s.listItem.Render("Mac"),
				s.done("Milk"),
			),
		),
	)
	return s.r.JoinHorizontal(gloss.Top, lists, colors.String())
}

const (
	historyA = "The Romans learned from the Greeks that quinces slowly cooked with honey would “set” when cool. The Apicius gives a recipe for preserving whole quinces, stems and leaves attached, in a bath of honey diluted with defrutum: Roman marmalade. Preserves of quince and lemon appear (along with rose, apple, plum and pear) in the Book of ceremonies of the Byzantine Emperor Constantine VII Porphyrogennetos."
	historyB = "Medieval quince preserves, which went by the French name cotignac, produced in a clear version and a fruit pulp version, began to lose their medieval seasoning of spices in the 16th century. In the 17th century, La Varenne provided recipes for both thick and clear cotignac."
	historyC = "In 1524, Henry VIII, King of England, received a “box of marmalade” from Mr. Hull of Exeter. This was probably marmelada, a solid quince paste from Portugal, still made and sold in southern Europe today. It became a favourite treat of Anne Boleyn and her ladies in waiting."
)

func (s styles) histories() string {
	return s.r.JoinHorizontal(gloss.Top,
		s.history.Align(gloss.Right).Render(historyA),
		s.history.Align(gloss.Center).Render(historyB),
		s.history.MarginRight(0).Render(historyC),
	)
}

func (s styles) statusLine(width int) string {
	statusKey := s.status.Render("STATUS")
	encoding := s.encoding.Render("UTF-8")
	fishCake := s.fishCake.Render("🍥 Fish Cake")
	statusVal := s.statusText.
		Width(width - s.r.Width(statusKey) - s.r.Width(encoding) - s.r.Width(fishCake)).
		Render("Ravishing")

	bar := s.r.JoinHorizontal(gloss.Top,
		statusKey,
		statusVal,
		encoding,
		fishCake,
	)
	return s.statusBar.Width(width).Render(bar)
}

// document renders the whole sample. physicalWidth, if positive, limits the
// width of the output
func document(r gloss.Renderer, width int, physicalWidth int) string {
	s := newStyles(r)

	var doc strings.Builder
	doc.WriteString(s.tabs(width) + "\n\n")
	doc.WriteString(s.header() + "\n\n")
	doc.WriteString(s.dialog(width) + "\n\n")
	doc.WriteString(s.lists() + "\n\n")
	doc.WriteString(s.histories() + "\n\n")
	doc.WriteString(s.statusLine(width))

	docStyle := s.doc
	if physicalWidth > 0 {
		docStyle = docStyle.MaxWidth(physicalWidth)
	}
	return docStyle.Render(doc.String())
}

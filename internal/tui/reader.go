package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/quran"
	"github.com/glabrego/noor-cli/internal/reader"
	tuiactions "github.com/glabrego/noor-cli/internal/tui/actions"
	"github.com/glabrego/noor-cli/internal/tui/platform"
	"github.com/glabrego/noor-cli/internal/tui/state"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
	"github.com/glabrego/noor-cli/internal/tui/view"
)

// Lines taken by the nav bar, the reader header and footer, the toolbar
// and the status line.
const readerChromeLines = 7

type readerScreen struct {
	keys       KeyMap
	mount      int
	number     int
	loading    bool
	detail     *quran.ChapterDetail
	pager      reader.Pager
	cursor     int
	layout     view.PageLayout
	viewport   viewport.Model
	selection  reader.Selection
	settings   bool
	appearance reader.Appearance
	// bookmarkAyah is the bookmarked verse of this chapter, 0 when the
	// bookmark points elsewhere.
	bookmarkAyah int
	pageOffset   int
	spinner      spinner.Model
	width        int
	height       int
}

func newReaderScreen(keys KeyMap, mount, number int, bm *bookmark.Bookmark, width, height int) readerScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	s := readerScreen{
		keys:       keys,
		mount:      mount,
		number:     number,
		loading:    true,
		appearance: reader.DefaultAppearance(),
		spinner:    sp,
		viewport:   viewport.New(80, 20),
	}
	if bm != nil && bm.SurahNumber == number {
		s.bookmarkAyah = bm.AyahNumber
	}
	s.resize(width, height)
	return s
}

func (s readerScreen) init(service tuiactions.Service) tea.Cmd {
	if service == nil {
		return nil
	}
	return tea.Batch(tuiactions.LoadChapterCmd(service, s.mount, s.number), s.spinner.Tick)
}

func (s *readerScreen) resize(width, height int) {
	s.width = width
	s.height = height
	if width > 0 {
		s.viewport.Width = width
	}
	h := height - readerChromeLines
	if s.settings {
		h -= 7
	}
	if h < 3 {
		h = 3
	}
	s.viewport.Height = h
	if s.detail != nil {
		s.refresh()
	}
}

func (s readerScreen) pageVerses() []quran.Verse {
	if s.detail == nil {
		return nil
	}
	return reader.PageVerses(s.detail.Ayahs, s.pager.Page())
}

func (s readerScreen) theme() tuitheme.Theme {
	return tuitheme.ForAppearance(s.appearance.Dark)
}

// refresh re-renders the page, or the modal when one is open, into the
// viewport. Verse offsets are final once it returns.
func (s *readerScreen) refresh() {
	th := s.theme()
	s.layout = view.RenderPage(view.PageParams{
		Chapter:    s.number,
		Page:       s.pager.Page(),
		Verses:     s.pageVerses(),
		Cursor:     s.cursor,
		Bookmarked: s.bookmarkAyah,
		Width:      s.viewport.Width,
		Appearance: s.appearance,
	}, th)

	if s.selection.IsOpen() {
		v := s.selection.Verse()
		s.viewport.SetContent(view.RenderVerseModal(view.ModalParams{
			ChapterName: s.detail.Name,
			VerseNumber: v.NumberInSurah,
			Text:        v.Text,
			State:       s.selection.State(),
			Explanation: s.selection.Explanation(),
			Spinner:     s.spinner.View(),
			Width:       s.viewport.Width,
			Dark:        s.appearance.Dark,
		}, th))
		return
	}
	s.viewport.SetContent(s.layout.Content)
}

func (s *readerScreen) centerOn(idx int) {
	if idx < 0 || idx >= len(s.layout.Offsets) {
		return
	}
	s.viewport.SetYOffset(state.CenteredOffset(s.layout.Offsets[idx], s.viewport.Height, s.layout.Lines))
}

func (s *readerScreen) keepCursorVisible() {
	if s.cursor < 0 || s.cursor >= len(s.layout.Offsets) {
		return
	}
	s.viewport.SetYOffset(state.VisibleOffset(
		s.viewport.YOffset,
		s.layout.Offsets[s.cursor],
		s.layout.Heights[s.cursor],
		s.viewport.Height,
	))
}

func (s readerScreen) update(msg tea.Msg, service tuiactions.Service, deps readerDeps) (readerScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tuiactions.ChapterLoadedMsg:
		if msg.Mount != s.mount || msg.Number != s.number {
			return s, nil
		}
		return s.applyChapter(msg.Detail), nil
	case tuiactions.ExplanationMsg:
		if msg.Mount != s.mount {
			return s, nil
		}
		if s.selection.Resolve(msg.Ticket, msg.Text, msg.OK) {
			s.refresh()
			s.viewport.GotoTop()
		}
		return s, nil
	case spinner.TickMsg:
		if !s.loading && s.selection.State() != reader.SelectionLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		if s.selection.State() == reader.SelectionLoading {
			s.refresh()
		}
		return s, cmd
	case tea.KeyMsg:
		if s.loading {
			if key.Matches(msg, s.keys.Back) {
				return s, emit(backMsg{})
			}
			return s, nil
		}
		if s.selection.IsOpen() {
			return s.updateModal(msg, service, deps)
		}
		return s.updatePage(msg, service)
	case tea.MouseMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}
	return s, nil
}

// applyChapter installs a loaded chapter. When the bookmark points into
// it, the bookmarked page is shown with the verse centred; the offsets
// used for that are the ones produced by the refresh just before.
func (s readerScreen) applyChapter(detail *quran.ChapterDetail) readerScreen {
	s.loading = false
	s.detail = detail
	s.selection.Close()
	if detail == nil {
		s.viewport.SetContent("")
		return s
	}
	s.pager = reader.NewPager(len(detail.Ayahs))
	s.cursor = 0

	if s.bookmarkAyah > 0 {
		s.pager.Jump(reader.PageForVerse(s.bookmarkAyah))
		if idx := state.VerseIndex(s.pageVerses(), s.bookmarkAyah); idx >= 0 {
			s.cursor = idx
		}
		s.refresh()
		s.centerOn(s.cursor)
		return s
	}
	s.refresh()
	s.viewport.GotoTop()
	return s
}

func (s readerScreen) updatePage(msg tea.KeyMsg, service tuiactions.Service) (readerScreen, tea.Cmd) {
	if s.detail == nil {
		switch {
		case key.Matches(msg, s.keys.Back):
			return s, emit(backMsg{})
		case key.Matches(msg, s.keys.Reload):
			s.loading = true
			return s, s.init(service)
		}
		return s, nil
	}

	switch {
	case key.Matches(msg, s.keys.Back):
		if s.settings {
			s.toggleSettings()
			return s, nil
		}
		return s, emit(backMsg{})
	case key.Matches(msg, s.keys.Up):
		if s.cursor > 0 {
			s.cursor--
			s.refresh()
			s.keepCursorVisible()
		}
	case key.Matches(msg, s.keys.Down):
		if s.cursor < len(s.pageVerses())-1 {
			s.cursor++
			s.refresh()
			s.keepCursorVisible()
		}
	case key.Matches(msg, s.keys.NextPage):
		if s.pager.Next() {
			s.turnPage()
		}
	case key.Matches(msg, s.keys.PrevPage):
		if s.pager.Prev() {
			s.turnPage()
		}
	case key.Matches(msg, s.keys.FirstPage):
		s.pager.Jump(1)
		s.turnPage()
	case key.Matches(msg, s.keys.LastPage):
		s.pager.Jump(s.pager.Count())
		s.turnPage()
	case key.Matches(msg, s.keys.ScrollUp):
		s.scroll(-s.viewport.Height / 2)
	case key.Matches(msg, s.keys.ScrollDown):
		s.scroll(s.viewport.Height / 2)
	case key.Matches(msg, s.keys.Open):
		verses := s.pageVerses()
		if s.cursor >= 0 && s.cursor < len(verses) {
			s.pageOffset = s.viewport.YOffset
			s.selection.Open(verses[s.cursor])
			s.refresh()
			s.viewport.GotoTop()
		}
	case key.Matches(msg, s.keys.Settings):
		s.toggleSettings()
	case key.Matches(msg, s.keys.Reload):
		s.loading = true
		s.detail = nil
		return s, s.init(service)
	case s.settings:
		s.updateSettings(msg)
	}
	return s, nil
}

func (s *readerScreen) scroll(delta int) {
	s.viewport.SetYOffset(s.viewport.YOffset + delta)
}

func (s *readerScreen) turnPage() {
	s.cursor = 0
	s.refresh()
	s.viewport.GotoTop()
}

func (s *readerScreen) toggleSettings() {
	s.settings = !s.settings
	s.resize(s.width, s.height)
}

func (s *readerScreen) updateSettings(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, s.keys.FontUp):
		s.appearance.IncreaseFont()
	case key.Matches(msg, s.keys.FontDown):
		s.appearance.DecreaseFont()
	case key.Matches(msg, s.keys.SpacingUp):
		s.appearance.IncreaseLineHeight()
	case key.Matches(msg, s.keys.SpacingDn):
		s.appearance.DecreaseLineHeight()
	case key.Matches(msg, s.keys.Bold):
		s.appearance.ToggleBold()
	case key.Matches(msg, s.keys.Dark):
		s.appearance.ToggleDark()
	default:
		return
	}
	s.refresh()
	s.keepCursorVisible()
}

// readerDeps are the side effects the verse actions need.
type readerDeps struct {
	now    func() time.Time
	copyFn func(string) error
	openFn func(string) error
}

func (s readerScreen) updateModal(msg tea.KeyMsg, service tuiactions.Service, deps readerDeps) (readerScreen, tea.Cmd) {
	sel := s.selection.State()
	switch {
	case key.Matches(msg, s.keys.Back):
		s.closeModal()
	case key.Matches(msg, s.keys.Actions):
		if sel == reader.SelectionExplained || sel == reader.SelectionFailed {
			s.selection.BackToActions()
			s.refresh()
		}
	case key.Matches(msg, s.keys.Bookmark):
		if sel != reader.SelectionChoosing && sel != reader.SelectionFailed {
			return s, nil
		}
		v := s.selection.Verse()
		b := bookmark.New(s.detail.Number, s.detail.Name, v.NumberInSurah, deps.now())
		s.bookmarkAyah = v.NumberInSurah
		s.closeModal()
		return s, emit(bookmarkSetMsg{bookmark: b})
	case key.Matches(msg, s.keys.Explain):
		ticket, ok := s.selection.BeginExplain()
		if !ok || service == nil {
			return s, nil
		}
		s.refresh()
		return s, tea.Batch(
			tuiactions.ExplainVerseCmd(service, s.mount, ticket, s.detail.Name, s.selection.Verse()),
			s.spinner.Tick,
		)
	case key.Matches(msg, s.keys.Copy):
		return s, tuiactions.CopyTextCmd(s.selection.Verse().Text, deps.copyFn)
	case key.Matches(msg, s.keys.OpenWeb):
		url, err := platform.VerseURL(s.number, s.selection.Verse().NumberInSurah)
		if err != nil {
			return s, emit(tuiactions.ExternalErrorMsg{Err: errors.New(tuiactions.OpenFailedText)})
		}
		return s, tuiactions.OpenURLCmd(url, deps.openFn, deps.copyFn)
	case key.Matches(msg, s.keys.Up):
		s.scroll(-1)
	case key.Matches(msg, s.keys.Down):
		s.scroll(1)
	case key.Matches(msg, s.keys.ScrollUp):
		s.scroll(-s.viewport.Height / 2)
	case key.Matches(msg, s.keys.ScrollDown):
		s.scroll(s.viewport.Height / 2)
	}
	return s, nil
}

func (s *readerScreen) closeModal() {
	s.selection.Close()
	s.refresh()
	s.viewport.SetYOffset(s.pageOffset)
}

func (s readerScreen) view() string {
	th := s.theme()
	if s.loading {
		return s.spinner.View() + " " + view.LoadingText
	}
	if s.detail == nil {
		return th.ErrorText.Render(view.ChapterLoadError)
	}

	var b strings.Builder
	b.WriteString(view.ReaderHeader(s.detail.Name, s.pager.Page(), s.pager.Count(), th))
	b.WriteString("\n")
	if s.settings {
		b.WriteString(view.SettingsPanel(s.appearance, th))
		b.WriteString("\n")
	}
	b.WriteString(s.viewport.View())
	b.WriteString("\n")
	b.WriteString(view.ReaderFooter(s.pager.Page(), s.pager.Count(), th))
	return b.String()
}

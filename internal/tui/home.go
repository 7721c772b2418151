package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/quran"
	"github.com/glabrego/noor-cli/internal/reader"
	tuiactions "github.com/glabrego/noor-cli/internal/tui/actions"
	"github.com/glabrego/noor-cli/internal/tui/state"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
	"github.com/glabrego/noor-cli/internal/tui/view"
)

// homeScreen lists the chapters with incremental search.
type homeScreen struct {
	keys      KeyMap
	mount     int
	loading   bool
	chapters  []quran.Chapter
	filtered  []quran.Chapter
	cursor    int
	search    textinput.Model
	searching bool
	spinner   spinner.Model
}

func newHomeScreen(keys KeyMap, mount int) homeScreen {
	ti := textinput.New()
	ti.Placeholder = view.SearchPrompt
	ti.CharLimit = 40
	ti.Width = 40
	ti.Prompt = ""

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return homeScreen{
		keys:    keys,
		mount:   mount,
		loading: true,
		search:  ti,
		spinner: sp,
	}
}

func (s homeScreen) init(service tuiactions.Service) tea.Cmd {
	if service == nil {
		return nil
	}
	return tea.Batch(tuiactions.LoadChaptersCmd(service, s.mount), s.spinner.Tick)
}

func (s homeScreen) inputFocused() bool {
	return s.searching
}

func (s homeScreen) update(msg tea.Msg, service tuiactions.Service, bm *bookmark.Bookmark, height int) (homeScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tuiactions.ChaptersLoadedMsg:
		if msg.Mount != s.mount {
			return s, nil
		}
		s.loading = false
		s.chapters = msg.Chapters
		s.applyFilter()
		return s, nil
	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		if s.searching {
			return s.updateSearch(msg)
		}
		return s.updateList(msg, service, bm, height)
	}
	return s, nil
}

func (s homeScreen) updateSearch(msg tea.KeyMsg) (homeScreen, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		s.searching = false
		s.search.Blur()
		s.search.SetValue("")
		s.applyFilter()
		return s, nil
	case msg.Type == tea.KeyEnter:
		s.searching = false
		s.search.Blur()
		return s, nil
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		s.moveCursor(msg.Type == tea.KeyDown)
		return s, nil
	}
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	s.applyFilter()
	return s, cmd
}

func (s homeScreen) updateList(msg tea.KeyMsg, service tuiactions.Service, bm *bookmark.Bookmark, height int) (homeScreen, tea.Cmd) {
	switch {
	case key.Matches(msg, s.keys.Up):
		s.moveCursor(false)
	case key.Matches(msg, s.keys.Down):
		s.moveCursor(true)
	case key.Matches(msg, s.keys.ScrollUp):
		s.cursor = state.ClampCursor(s.cursor-state.ListRows(height, bm != nil), len(s.filtered))
	case key.Matches(msg, s.keys.ScrollDown):
		s.cursor = state.ClampCursor(s.cursor+state.ListRows(height, bm != nil), len(s.filtered))
	case key.Matches(msg, s.keys.Search):
		s.searching = true
		return s, s.search.Focus()
	case key.Matches(msg, s.keys.Back):
		if s.search.Value() != "" {
			s.search.SetValue("")
			s.applyFilter()
		}
	case key.Matches(msg, s.keys.Open):
		if len(s.filtered) == 0 {
			return s, nil
		}
		return s, emit(openChapterMsg{number: s.filtered[s.cursor].Number})
	case key.Matches(msg, s.keys.Continue):
		if bm == nil {
			return s, nil
		}
		return s, emit(openChapterMsg{number: bm.SurahNumber})
	case key.Matches(msg, s.keys.Reload):
		if s.loading || service == nil {
			return s, nil
		}
		s.loading = true
		return s, tea.Batch(tuiactions.LoadChaptersCmd(service, s.mount), s.spinner.Tick)
	}
	return s, nil
}

func (s *homeScreen) moveCursor(down bool) {
	if down {
		s.cursor = state.ClampCursor(s.cursor+1, len(s.filtered))
		return
	}
	s.cursor = state.ClampCursor(s.cursor-1, len(s.filtered))
}

// applyFilter refilters and keeps the cursor on the same chapter when it
// is still listed.
func (s *homeScreen) applyFilter() {
	current := 0
	if s.cursor >= 0 && s.cursor < len(s.filtered) {
		current = s.filtered[s.cursor].Number
	}
	s.filtered = reader.FilterChapters(s.chapters, s.search.Value())
	if idx := state.ChapterIndexByNumber(s.filtered, current); idx >= 0 {
		s.cursor = idx
		return
	}
	s.cursor = state.ClampCursor(0, len(s.filtered))
}

func (s homeScreen) view(width, height int, bm *bookmark.Bookmark, th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(view.HomeHeader(width, th))
	b.WriteString("\n")
	if bm != nil {
		b.WriteString(view.BookmarkBox(*bm, th))
		b.WriteString("\n")
	}
	b.WriteString(view.SearchLine(s.search.View(), s.searching, th))
	b.WriteString("\n\n")

	if s.loading {
		b.WriteString(s.spinner.View() + " " + view.LoadingText)
		return b.String()
	}
	rows := state.ListRows(height, bm != nil)
	start, end := state.CenteredWindow(len(s.filtered), s.cursor, rows)
	b.WriteString(view.RenderChapterList(view.ListRenderInput{
		Chapters: s.filtered,
		Start:    start,
		End:      end,
		Cursor:   s.cursor,
		Width:    width,
	}, th))
	return b.String()
}

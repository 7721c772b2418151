package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/noor-cli/internal/bookmark"
	"github.com/glabrego/noor-cli/internal/reader"
	tuiactions "github.com/glabrego/noor-cli/internal/tui/actions"
	"github.com/glabrego/noor-cli/internal/tui/platform"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
	"github.com/glabrego/noor-cli/internal/tui/view"
)

const statusTTL = 4 * time.Second

type Service = tuiactions.Service

type openChapterMsg struct {
	number int
}

type bookmarkSetMsg struct {
	bookmark bookmark.Bookmark
}

type backMsg struct{}

type clearStatusMsg struct {
	id int
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

// Model is the root of the program. It owns navigation and the bookmark;
// each screen is rebuilt with a fresh mount id whenever it is shown.
type Model struct {
	service  Service
	keys     KeyMap
	screen   view.Tab
	mount    int
	chapter  int
	bookmark *bookmark.Bookmark
	home     homeScreen
	reader   readerScreen
	hadith   hadithScreen
	width    int
	height   int
	status   string
	statusID int
	warning  bool
	nowFn    func() time.Time
	copyFn   func(string) error
	openFn   func(string) error
}

func NewModel(service Service, bm *bookmark.Bookmark) Model {
	keys := DefaultKeyMap()
	m := Model{
		service:  service,
		keys:     keys,
		screen:   view.TabHome,
		bookmark: bm,
		nowFn:    time.Now,
		copyFn:   platform.CopyToClipboard,
		openFn:   platform.OpenURLInBrowser,
	}
	m.mount++
	m.home = newHomeScreen(keys, m.mount)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.home.init(m.service)
}

func (m Model) theme() tuitheme.Theme {
	if m.screen == view.TabReader {
		return m.reader.theme()
	}
	return tuitheme.Default()
}

func (m Model) inputFocused() bool {
	switch m.screen {
	case view.TabHome:
		return m.home.inputFocused()
	case view.TabHadith:
		return m.hadith.inputFocused()
	}
	return false
}

// navigate remounts the target screen. The reader needs an opened
// chapter and falls back to the chapter list without one.
func (m Model) navigate(target view.Tab) (Model, tea.Cmd) {
	if target == view.TabReader && m.chapter == 0 {
		target = view.TabHome
	}
	m.mount++
	m.screen = target
	switch target {
	case view.TabReader:
		m.reader = newReaderScreen(m.keys, m.mount, m.chapter, m.bookmark, m.width, m.height)
		return m, m.reader.init(m.service)
	case view.TabHadith:
		m.hadith = newHadithScreen(m.keys, m.mount, m.width, m.height)
		return m, m.hadith.init()
	default:
		m.home = newHomeScreen(m.keys, m.mount)
		return m, m.home.init(m.service)
	}
}

func (m Model) nextTab() view.Tab {
	switch m.screen {
	case view.TabHome:
		return view.TabHadith
	case view.TabHadith:
		if m.chapter > 0 {
			return view.TabReader
		}
	}
	return view.TabHome
}

func (m Model) setStatus(status string, warning bool) (Model, tea.Cmd) {
	m.statusID++
	m.status = status
	m.warning = warning
	return m, clearStatusCmd(m.statusID, statusTTL)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reader.resize(msg.Width, msg.Height)
		m.hadith.resize(msg.Width, msg.Height, m.theme())
		return m, nil
	case openChapterMsg:
		m.chapter = msg.number
		return m.navigate(view.TabReader)
	case backMsg:
		return m.navigate(view.TabHome)
	case bookmarkSetMsg:
		b := msg.bookmark
		m.bookmark = &b
		return m, tuiactions.SaveBookmarkCmd(m.service, b)
	case tuiactions.BookmarkPersistedMsg:
		if msg.Err != nil {
			return m.setStatus("تعذر حفظ العلامة", true)
		}
		return m.setStatus(fmt.Sprintf("تم حفظ العلامة: %s - آية %d", msg.Bookmark.SurahName, msg.Bookmark.AyahNumber), false)
	case tuiactions.ExternalSuccessMsg:
		return m.setStatus(msg.Status, false)
	case tuiactions.ExternalErrorMsg:
		return m.setStatus(msg.Err.Error(), true)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
			m.warning = false
		}
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.NextTab) {
			return m.navigate(m.nextTab())
		}
		// Printable shortcuts belong to a focused text input.
		if !m.inputFocused() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.HomeTab):
				return m.navigate(view.TabHome)
			case key.Matches(msg, m.keys.HadithTab):
				return m.navigate(view.TabHadith)
			}
		}
	}
	return m.updateScreen(msg)
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.screen {
	case view.TabReader:
		m.reader, cmd = m.reader.update(msg, m.service, readerDeps{now: m.nowFn, copyFn: m.copyFn, openFn: m.openFn})
	case view.TabHadith:
		m.hadith, cmd = m.hadith.update(msg, m.service, m.theme())
	default:
		m.home, cmd = m.home.update(msg, m.service, m.bookmark, m.height)
	}
	return m, cmd
}

func (m Model) loading() bool {
	switch m.screen {
	case view.TabReader:
		return m.reader.loading || m.reader.selection.State() == reader.SelectionLoading
	case view.TabHadith:
		return m.hadith.pending
	}
	return m.home.loading
}

func (m Model) View() string {
	th := m.theme()
	var b strings.Builder
	b.WriteString(view.NavBar(m.screen, m.chapter > 0, th))
	b.WriteString("\n\n")
	switch m.screen {
	case view.TabReader:
		b.WriteString(m.reader.view())
	case view.TabHadith:
		b.WriteString(m.hadith.view(th))
	default:
		b.WriteString(m.home.view(m.width, m.height, m.bookmark, th))
	}
	b.WriteString("\n\n")
	b.WriteString(view.Toolbar(m.screen, m.home.searching, m.reader.settings, m.reader.selection.IsOpen()))
	b.WriteString("\n")
	b.WriteString(view.StatusLine(m.loading(), m.warning, m.status, th))
	b.WriteString("\n")
	return b.String()
}

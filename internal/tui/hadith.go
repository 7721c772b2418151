package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/noor-cli/internal/explain"
	tuiactions "github.com/glabrego/noor-cli/internal/tui/actions"
	tuitheme "github.com/glabrego/noor-cli/internal/tui/theme"
	"github.com/glabrego/noor-cli/internal/tui/view"
)

// Nav bar, two header lines, the input, a blank, toolbar and status.
const hadithChromeLines = 8

type hadithScreen struct {
	keys     KeyMap
	mount    int
	topic    textinput.Model
	seq      int
	pending  bool
	result   *explain.Hadith
	failed   bool
	spinner  spinner.Model
	viewport viewport.Model
	width    int
}

func newHadithScreen(keys KeyMap, mount, width, height int) hadithScreen {
	ti := textinput.New()
	ti.Placeholder = view.HadithTopicHint
	ti.CharLimit = 120
	ti.Width = 60
	ti.Prompt = "› "
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	s := hadithScreen{
		keys:     keys,
		mount:    mount,
		topic:    ti,
		spinner:  sp,
		viewport: viewport.New(80, 20),
	}
	s.resize(width, height, tuitheme.Default())
	return s
}

func (s hadithScreen) init() tea.Cmd {
	return textinput.Blink
}

func (s hadithScreen) inputFocused() bool {
	return s.topic.Focused()
}

func (s *hadithScreen) resize(width, height int, th tuitheme.Theme) {
	s.width = width
	if width > 0 {
		s.viewport.Width = width
	}
	h := height - hadithChromeLines
	if h < 3 {
		h = 3
	}
	s.viewport.Height = h
	s.render(th)
}

func (s hadithScreen) update(msg tea.Msg, service tuiactions.Service, th tuitheme.Theme) (hadithScreen, tea.Cmd) {
	switch msg := msg.(type) {
	case tuiactions.HadithMsg:
		if msg.Mount != s.mount || msg.Seq != s.seq {
			return s, nil
		}
		s.pending = false
		s.result = msg.Hadith
		s.failed = msg.Hadith == nil
		s.render(th)
		s.viewport.GotoTop()
		return s, nil
	case spinner.TickMsg:
		if !s.pending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Random):
			s.topic.SetValue("")
			return s.submit(service, "")
		case msg.Type == tea.KeyEnter:
			return s.submit(service, strings.TrimSpace(s.topic.Value()))
		case msg.Type == tea.KeyUp:
			s.viewport.SetYOffset(s.viewport.YOffset - 1)
			return s, nil
		case msg.Type == tea.KeyDown:
			s.viewport.SetYOffset(s.viewport.YOffset + 1)
			return s, nil
		case key.Matches(msg, s.keys.ScrollUp):
			s.viewport.SetYOffset(s.viewport.YOffset - s.viewport.Height/2)
			return s, nil
		case key.Matches(msg, s.keys.ScrollDown):
			s.viewport.SetYOffset(s.viewport.YOffset + s.viewport.Height/2)
			return s, nil
		case msg.Type == tea.KeyEsc:
			return s, emit(backMsg{})
		}
		var cmd tea.Cmd
		s.topic, cmd = s.topic.Update(msg)
		return s, cmd
	case tea.MouseMsg:
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}
	var cmd tea.Cmd
	s.topic, cmd = s.topic.Update(msg)
	return s, cmd
}

// submit starts a request unless one is already in flight. An empty topic
// asks for a random hadith.
func (s hadithScreen) submit(service tuiactions.Service, topic string) (hadithScreen, tea.Cmd) {
	if s.pending || service == nil {
		return s, nil
	}
	s.seq++
	s.pending = true
	s.failed = false
	s.result = nil
	s.viewport.SetContent("")
	return s, tea.Batch(tuiactions.FetchHadithCmd(service, s.mount, s.seq, topic), s.spinner.Tick)
}

func (s *hadithScreen) render(th tuitheme.Theme) {
	if s.result == nil {
		s.viewport.SetContent("")
		return
	}
	s.viewport.SetContent(view.RenderHadithCard(*s.result, s.viewport.Width, th))
}

func (s hadithScreen) view(th tuitheme.Theme) string {
	var b strings.Builder
	b.WriteString(view.HadithHeader(s.width, th))
	b.WriteString("\n")
	b.WriteString(s.topic.View())
	b.WriteString("\n\n")
	switch {
	case s.pending:
		b.WriteString(view.HadithLoading(s.spinner.View()))
	case s.failed:
		b.WriteString(th.ErrorText.Render(view.HadithError))
	case s.result != nil:
		b.WriteString(s.viewport.View())
	}
	return b.String()
}

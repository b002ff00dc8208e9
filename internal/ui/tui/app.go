package tui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/wordfreq/internal/domain"
)

type screen int

const (
	screenLoading screen = iota
	screenTable
	screenError
)

type sortMode int

const (
	sortByWord sortMode = iota
	sortByCount
)

type entryItem struct {
	entry domain.Entry
	top   bool
}

func (i entryItem) Title() string { return i.entry.Word }
func (i entryItem) Description() string {
	d := fmt.Sprintf("%d occurrence(s)", i.entry.Count)
	if i.top {
		d += " • most frequent"
	}
	return d
}
func (i entryItem) FilterValue() string { return i.entry.Word }

type model struct {
	theme Theme
	deps  Deps

	scr    screen
	list   list.Model
	report domain.Report
	err    error

	sort    sortMode
	topOnly bool
	toast   string
}

func Run(deps Deps) error {
	m := wrapSafe(newModel(deps), deps.Logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Words"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: DefaultTheme(),
		deps:  deps,
		scr:   screenLoading,
		list:  l,
	}
}

func (m model) Init() tea.Cmd { return cmdCount(m.deps) }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-8, msg.Height-12)
		return m, nil

	case reportLoadedMsg:
		if msg.err != nil {
			m.scr = screenError
			m.err = msg.err
			return m, nil
		}
		m.scr = screenTable
		m.report = msg.report
		if msg.report.ReadErr != nil {
			m.toast = "Input only partially read: " + msg.report.ReadErr.Error()
		}
		cmd := m.list.SetItems(m.items())
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "s":
			if m.scr == screenTable {
				if m.sort == sortByWord {
					m.sort = sortByCount
				} else {
					m.sort = sortByWord
				}
				cmd := m.list.SetItems(m.items())
				return m, cmd
			}

		case "m":
			if m.scr == screenTable {
				m.topOnly = !m.topOnly
				cmd := m.list.SetItems(m.items())
				return m, cmd
			}
		}
	}

	if m.scr == screenTable {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// reset puts the browser back into a usable state after a failed update.
// Before a report has loaded there is nothing to show, so err is displayed.
func (m model) reset(err error) (model, tea.Cmd) {
	if m.scr != screenTable {
		m.scr = screenError
		m.err = err
		return m, nil
	}

	m.sort = sortByWord
	m.topOnly = false
	m.toast = "Unexpected error (see logs); view reset"
	m.list.ResetFilter()
	cmd := m.list.SetItems(m.items())
	return m, cmd
}

// items builds the list rows for the current sort and filter settings.
func (m model) items() []list.Item {
	top := map[string]bool{}
	for _, e := range m.report.Max {
		top[e.Word] = true
	}

	entries := m.report.Table.Entries()
	if m.topOnly {
		entries = append([]domain.Entry(nil), m.report.Max...)
	}
	if m.sort == sortByCount {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Count > entries[j].Count
		})
	}

	out := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryItem{entry: e, top: top[e.Word]})
	}
	return out
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("wordfreq") + "\n" +
		m.theme.Subtitle.Render("Word frequencies, sorted alphabetically") + "\n"

	switch m.scr {
	case screenLoading:
		return wrap.Render(header + "\n" + m.theme.Help.Render("Counting words…"))

	case screenError:
		card := m.theme.Card.Render(
			m.theme.Warn.Render("⚠ "+clampString(m.err.Error(), 200)) + "\n\n" +
				m.theme.Help.Render("q quit"),
		)
		return wrap.Render(header + "\n" + card)

	case screenTable:
		var toast string
		if m.toast != "" {
			toast = m.theme.Warn.Render(clampString(m.toast, 200)) + "\n"
		}
		summary := renderSummary(m.report, m.sort, m.topOnly)
		if src := renderSources(m.deps); src != "" {
			summary += "\n" + src
		}
		help := m.theme.Help.Render("↑/↓ navigate • / search • s sort • m most frequent • q quit")
		return wrap.Render(header + "\n" +
			m.theme.Help.Render(summary) + "\n" +
			toast + "\n" +
			m.theme.Card.Render(m.list.View()) + "\n" + help)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seahorse-ai-ryan/tiledock/internal/cli/styles"
	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
	"github.com/seahorse-ai-ryan/tiledock/internal/workspace"
)

type itemKind int

const (
	itemDocked itemKind = iota
	itemFloatingOpen
	itemFloatingClosed
)

// item is one selectable entry: a docked pane or a floating record.
type item struct {
	kind  itemKind
	tile  tiling.TileID
	panel entity.PanelID
	title string
}

// DockModel is the Bubble Tea model for the interactive docking demo. It is
// a pure rendering collaborator: key presses enqueue workspace events and
// the queue is drained once at the end of each Update.
type DockModel struct {
	manager *workspace.Manager
	theme   *styles.Theme
	help    help.Model
	keys    dockKeyMap

	items       []item
	selectedIdx int
	width       int
	height      int
	status      string
	showDump    bool
}

type dockKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Undock key.Binding
	Dock   key.Binding
	Close  key.Binding
	Open   key.Binding
	Dump   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k dockKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Undock, k.Dock, k.Close, k.Open, k.Quit}
}

func (k dockKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Undock, k.Dock, k.Close, k.Open},
		{k.Dump, k.Help, k.Quit},
	}
}

func defaultDockKeyMap() dockKeyMap {
	return dockKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Undock: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undock"),
		),
		Dock: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dock"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "activate/reopen"),
		),
		Dump: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tree dump"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewDockModel creates the demo model around an already-populated manager.
func NewDockModel(manager *workspace.Manager) *DockModel {
	m := &DockModel{
		manager: manager,
		theme:   styles.NewTheme(),
		help:    help.New(),
		keys:    defaultDockKeyMap(),
	}
	m.rebuildItems()
	return m
}

// Init implements tea.Model.
func (m *DockModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Key presses only enqueue events; the queue is
// drained once after the key is handled, never mid-render.
func (m *DockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Dump):
			m.showDump = !m.showDump
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selectedIdx < len(m.items)-1 {
				m.selectedIdx++
			}
			return m, nil
		case key.Matches(msg, m.keys.Undock):
			if it, ok := m.selected(); ok && it.kind == itemDocked {
				m.manager.Enqueue(workspace.Undock(it.tile))
			}
		case key.Matches(msg, m.keys.Dock):
			if it, ok := m.selected(); ok && it.kind == itemFloatingOpen {
				m.manager.Enqueue(workspace.Dock(it.panel))
			}
		case key.Matches(msg, m.keys.Close):
			if it, ok := m.selected(); ok {
				switch it.kind {
				case itemDocked:
					m.manager.Enqueue(workspace.CloseDocked(it.tile))
				case itemFloatingOpen:
					m.manager.Enqueue(workspace.CloseFloating(it.panel))
				}
			}
		case key.Matches(msg, m.keys.Open):
			if it, ok := m.selected(); ok {
				switch it.kind {
				case itemDocked:
					m.manager.Enqueue(workspace.ActivateTab(it.tile))
				case itemFloatingClosed:
					m.manager.Enqueue(workspace.Reopen(it.panel))
				}
			}
		}
		m.drain()
		return m, nil
	}
	return m, nil
}

func (m *DockModel) selected() (item, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.items) {
		return item{}, false
	}
	return m.items[m.selectedIdx], true
}

// drain processes the queued events and refreshes the selectable items.
func (m *DockModel) drain() {
	if m.manager.Pending() == 0 {
		return
	}
	errs := m.manager.ProcessEvents()
	if len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, err := range errs {
			msgs[i] = err.Error()
		}
		m.status = strings.Join(msgs, "; ")
	} else {
		m.status = ""
	}
	m.rebuildItems()
}

// rebuildItems flattens the tree's panes in draw order, then the floating
// records, into the selectable list.
func (m *DockModel) rebuildItems() {
	prev, hadPrev := m.selected()

	m.items = m.items[:0]
	m.manager.Tree().Walk(func(id tiling.TileID, t *tiling.Tile, _ int) bool {
		if t.IsPane() && t.Panel() != nil {
			m.items = append(m.items, item{
				kind:  itemDocked,
				tile:  id,
				panel: t.Panel().ID(),
				title: t.Panel().Title(),
			})
		}
		return true
	})
	for _, rec := range m.manager.Registry().Open() {
		m.items = append(m.items, item{
			kind:  itemFloatingOpen,
			panel: rec.Panel.ID(),
			title: rec.Panel.Title(),
		})
	}
	for _, rec := range m.manager.Registry().Closed() {
		m.items = append(m.items, item{
			kind:  itemFloatingClosed,
			panel: rec.Panel.ID(),
			title: rec.Panel.Title(),
		})
	}

	// Follow the panel across state changes when possible.
	if hadPrev {
		for i, it := range m.items {
			if it.panel == prev.panel {
				m.selectedIdx = i
				return
			}
		}
	}
	if m.selectedIdx >= len(m.items) {
		m.selectedIdx = len(m.items) - 1
	}
	if m.selectedIdx < 0 {
		m.selectedIdx = 0
	}
}

// View implements tea.Model.
func (m *DockModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("tiledock"))
	b.WriteString("\n\n")

	if m.manager.Tree().IsEmpty() {
		b.WriteString(m.theme.Subtle.Render("(empty tree)"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTile(m.manager.Tree().Root()))
		b.WriteString("\n")
	}

	b.WriteString(m.renderFloating())

	if m.showDump {
		b.WriteString("\n")
		b.WriteString(m.theme.Subtle.Render(m.manager.DumpTree()))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.theme.ErrStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderTile draws a tile subtree: tab bars over the active child for tabs
// containers, joined boxes for linear splits, bordered content for panes.
func (m *DockModel) renderTile(id tiling.TileID) string {
	t, ok := m.manager.Tree().Arena().Get(id)
	if !ok {
		return ""
	}

	switch {
	case t.IsPane():
		return m.renderPane(id, t)
	case t.IsTabs():
		return m.renderTabs(id, t)
	default:
		parts := make([]string, 0, t.ChildCount())
		for _, c := range t.Children() {
			parts = append(parts, m.renderTile(c))
		}
		if t.Kind() == tiling.KindHorizontal {
			return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		}
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
}

func (m *DockModel) renderPane(id tiling.TileID, t *tiling.Tile) string {
	title := t.Panel().Title()
	lines := []string{m.theme.BoxHeader.Render(title)}
	if bp, ok := t.Panel().(interface{ Body() []string }); ok {
		for _, line := range bp.Body() {
			lines = append(lines, m.theme.Subtle.Render(line))
		}
	}

	box := m.theme.Box
	if it, ok := m.selected(); ok && it.kind == itemDocked && it.tile == id {
		box = m.theme.SelectedBox
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m *DockModel) renderTabs(id tiling.TileID, t *tiling.Tile) string {
	if t.ChildCount() == 0 {
		return m.theme.Box.Render(m.theme.Subtle.Render("(empty)"))
	}

	var labels []string
	for _, c := range t.Children() {
		title := "?"
		if ct, ok := m.manager.Tree().Arena().Get(c); ok {
			if ct.IsPane() && ct.Panel() != nil {
				title = ct.Panel().Title()
			} else {
				title = ct.Kind().String()
			}
		}
		style := m.theme.InactiveTab
		if c == t.Active() {
			style = m.theme.ActiveTab
		}
		if it, ok := m.selected(); ok && it.kind == itemDocked && it.tile == c {
			style = m.theme.SelectedTab
		}
		labels = append(labels, style.Render(title))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Bottom, labels...)

	content := ""
	if t.Active() != tiling.NilTile {
		content = m.renderTile(t.Active())
	}
	return lipgloss.JoinVertical(lipgloss.Left, bar, content)
}

func (m *DockModel) renderFloating() string {
	reg := m.manager.Registry()
	if reg.Len() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(m.theme.Subtitle.Render("Floating"))
	b.WriteString("\n")

	for _, rec := range reg.Open() {
		sel := ""
		if it, ok := m.selected(); ok && it.kind == itemFloatingOpen && it.panel == rec.Panel.ID() {
			sel = m.theme.Highlight.Render("> ")
		}
		geo := ""
		if rec.Rect != nil {
			geo = fmt.Sprintf(" %dx%d@%d,%d", rec.Rect.W, rec.Rect.H, rec.Rect.X, rec.Rect.Y)
		}
		b.WriteString(sel)
		b.WriteString(m.theme.FloatingBox.Render(m.theme.BoxHeader.Render(rec.Panel.Title()) + m.theme.Subtle.Render(geo)))
		b.WriteString("\n")
	}
	for _, rec := range reg.Closed() {
		sel := "  "
		if it, ok := m.selected(); ok && it.kind == itemFloatingClosed && it.panel == rec.Panel.ID() {
			sel = m.theme.Highlight.Render("> ")
		}
		b.WriteString(sel)
		b.WriteString(m.theme.Subtle.Render(rec.Panel.Title() + " (closed)"))
		b.WriteString("\n")
	}
	return b.String()
}

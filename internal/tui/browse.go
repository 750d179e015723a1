// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/passout/internal/grouper"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// level is one opened group together with the cursor position inside it.
type level struct {
	node *grouper.Node
	idx  int
}

type browseModel struct {
	sep    string
	levels []level

	picked     string
	quitByUser bool
}

func newBrowseModel(root *grouper.Node, sep string) *browseModel {
	if sep == "" {
		sep = grouper.DefaultSeparator
	}
	return &browseModel{
		sep:    sep,
		levels: []level{{node: root}},
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	cur := &m.levels[len(m.levels)-1]
	children := cur.node.Children()

	switch {
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(keyMsg, keys.up):
		if cur.idx > 0 {
			cur.idx--
		}

	case key.Matches(keyMsg, keys.down):
		if cur.idx < len(children)-1 {
			cur.idx++
		}

	case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.right):
		if len(children) == 0 {
			return m, nil
		}
		selected := children[cur.idx]
		if !selected.IsLeaf() {
			m.levels = append(m.levels, level{node: selected})
			return m, nil
		}
		return m.pick(selected)

	case key.Matches(keyMsg, keys.pick):
		if len(children) == 0 || !children[cur.idx].Terminal {
			return m, nil
		}
		return m.pick(children[cur.idx])

	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.back), key.Matches(keyMsg, keys.esc):
		if len(m.levels) > 1 {
			m.levels = m.levels[:len(m.levels)-1]
		}
	}

	return m, nil
}

func (m *browseModel) pick(node *grouper.Node) (tea.Model, tea.Cmd) {
	m.picked = grouper.JoinPath(append(m.path(), node.Label), m.sep)
	return m, tea.Quit
}

// path returns the labels of the opened groups below the root.
func (m *browseModel) path() []string {
	labels := make([]string, 0, len(m.levels)-1)
	for _, l := range m.levels[1:] {
		labels = append(labels, l.node.Label)
	}
	return labels
}

func (m *browseModel) View() string {
	if m.picked != "" || m.quitByUser {
		return ""
	}

	cur := m.levels[len(m.levels)-1]

	var b strings.Builder
	for i, child := range cur.node.Children() {
		cursor := "  "
		if i == cur.idx {
			cursor = cursorStyle.Render("> ")
		}

		label := child.Label
		if !child.IsLeaf() {
			label = groupStyle.Render(label + m.sep)
			if child.Terminal {
				label += " *"
			}
		}
		fmt.Fprintf(&b, "%s%s\n", cursor, label)
	}

	title := "passout"
	if path := m.path(); len(path) > 0 {
		title = "passout: " + grouper.JoinPath(path, m.sep)
	}

	hotKeys := "enter/→: open or clip │ ←/esc: back │ ↑/↓: move"
	if m.hasTerminalGroup() {
		hotKeys += " │ c: clip group marked *"
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *browseModel) hasTerminalGroup() bool {
	for _, child := range m.levels[len(m.levels)-1].node.Children() {
		if child.Terminal && !child.IsLeaf() {
			return true
		}
	}
	return false
}

// Package tui is an interactive tree menu over the grouped credential
// names. Picking a credential returns its stored name; what happens with it
// is up to the caller.
package tui

import (
	"errors"

	"github.com/MKhiriev/passout/internal/grouper"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrUserQuit is returned when the menu was left without picking anything.
var ErrUserQuit = errors.New("quit by user")

// ErrNothingToBrowse is returned for an empty tree.
var ErrNothingToBrowse = errors.New("no credentials stored")

// Browse runs the menu over root, whose names were grouped on sep, and
// returns the picked credential name.
func Browse(root *grouper.Node, sep string, opts ...tea.ProgramOption) (string, error) {
	if root == nil || root.IsLeaf() {
		return "", ErrNothingToBrowse
	}

	finalModel, err := tea.NewProgram(newBrowseModel(root, sep), opts...).Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(*browseModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser || result.picked == "" {
		return "", ErrUserQuit
	}
	return result.picked, nil
}

package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar produces a full-width inverted status line with the
// current room, its exits, and the inventory.
func (m Model) renderStatusBar() string {
	s := m.engine.State
	room := m.engine.World.Room(s.Current)

	var exitStr string
	if room != nil {
		dirs := make([]string, 0, len(room.Exits))
		for dir := range room.Exits {
			dirs = append(dirs, dir)
		}
		sort.Strings(dirs)
		exitStr = strings.Join(dirs, ",")
	}

	left := fmt.Sprintf(" %s | Exits: %s", s.Current, exitStr)

	right := " "
	if n := len(s.Inventory); n > 0 {
		candidate := fmt.Sprintf("Inv: %s ", strings.Join(s.Inventory, ", "))
		if lipgloss.Width(left)+lipgloss.Width(candidate)+2 < m.width {
			right = candidate
		} else {
			right = fmt.Sprintf("Inv: %d ", n)
		}
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	return styleStatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

package ui

import "strings"

// renderHelp draws the key hint footer.
func (m Model) renderHelp() string {
	bindings := m.keys.helpBindings()
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.Key.Render(h.Key)+" "+h.Desc)
	}
	line := strings.Join(parts, "  ")
	if m.width > 0 {
		return m.styles.Footer.Width(m.width).Render(line)
	}
	return m.styles.Footer.Render(line)
}

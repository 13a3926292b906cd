package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// barScale is how many payload bytes one bar cell represents.
const barScale = 64

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := headerStyle.Render("heapexplorer") + " " +
		traceStyle.Render(m.tracePath) +
		statusStyle.Render(fmt.Sprintf("(%s, %d bytes)", m.variantName, m.segSize))

	var statusLine string
	switch {
	case m.lastErr != nil:
		statusLine = errorStyle.Render("error: " + m.lastErr.Error())
	case m.status != "":
		statusLine = statusStyle.Render(m.status)
	default:
		statusLine = statusStyle.Render("ready")
	}

	progress := statusStyle.Render(fmt.Sprintf(
		"op %d/%d | live %d | used %d bytes",
		m.next, len(m.ops), m.runner.Live(), m.alloc.Used()))

	help := helpStyle.Render("n step | p back | g start | G end | c check | q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.vp.View(),
		progress+" "+statusLine,
		help,
	)
}

// renderBlocks draws one line per heap block: offset, state, size, and
// a bar proportional to the size.
func (m Model) renderBlocks() string {
	var sb strings.Builder
	for _, b := range m.alloc.Blocks() {
		cells := b.Size / barScale
		if cells < 1 {
			cells = 1
		}
		if cells > 64 {
			cells = 64
		}
		bar := strings.Repeat("#", cells)
		line := fmt.Sprintf("%#08x %-4s %7d  %s", b.Offset, stateName(b.Used), b.Size, bar)
		if b.Used {
			sb.WriteString(usedStyle.Render(line))
		} else {
			sb.WriteString(freeStyle.Render(line))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func stateName(used bool) string {
	if used {
		return "used"
	}
	return "free"
}

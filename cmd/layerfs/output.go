package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/layerfs"
	"github.com/dustin/go-humanize"
)

type styles struct {
	title lipgloss.Style
	label lipgloss.Style
	value lipgloss.Style
	good  lipgloss.Style
	bad   lipgloss.Style
	help  lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) *styles {
	return &styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Width(10),
		value: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		good: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575")),
		bad: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4672")),
		help: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
	}
}

func (s *styles) row(label string, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label), s.value.Render(value))
}

func (s *styles) renderMounts(mounts []string) string {
	if len(mounts) == 0 {
		return s.help.Render("no mounts")
	}

	rows := make([]string, 0, len(mounts)+1)
	rows = append(rows, s.title.Render("Mounts"))

	// Highest precedence first, matching the resolution order.
	for i := len(mounts) - 1; i >= 0; i-- {
		rows = append(rows, s.row(fmt.Sprintf("#%d", i+1), mounts[i]))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (s *styles) renderExists(name string, ok bool) string {
	if ok {
		return s.good.Render("found") + " " + name
	}

	return s.bad.Render("missing") + " " + name
}

func (s *styles) renderInfo(name string, info layerfs.Info) string {
	modified := info.ModifiedAt()

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render(name),
		s.row("type", info.Type.String()),
		s.row("size", fmt.Sprintf("%s (%d bytes)", humanize.Bytes(info.Size), info.Size)),
		s.row("modified", fmt.Sprintf("%s (%s)", modified.Format("2006-01-02 15:04:05"), humanize.Time(modified))),
	)
}

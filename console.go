package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"voicetype/notify"
)

// consoleListener renders recorder events as single status lines and
// forwards the important ones to the desktop notifier.
type consoleListener struct {
	notifier *notify.Notifier

	rec  lipgloss.Style
	ok   lipgloss.Style
	warn lipgloss.Style
	fail lipgloss.Style
	dim  lipgloss.Style
}

func newConsoleListener(n *notify.Notifier) *consoleListener {
	return &consoleListener{
		notifier: n,
		rec:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		ok:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		warn:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		fail:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (c *consoleListener) Banner(key, device, provider string) {
	fmt.Printf("%s %s\n", c.ok.Render("voicetype"), c.dim.Render(version))
	fmt.Printf("  hold %s to dictate, esc cancels (or quits when idle)\n", c.rec.Render(key))
	fmt.Printf("  mic: %s   transcriber: %s\n", device, provider)
}

func (c *consoleListener) Errorf(format string, args ...any) {
	fmt.Printf("%s\n", c.fail.Render(fmt.Sprintf(format, args...)))
}

func (c *consoleListener) RecordingStarted(_, device string) {
	fmt.Printf("%s %s\n", c.rec.Render("● recording"), c.dim.Render(device))
}

func (c *consoleListener) RecordingStopped(_ string, audio time.Duration) {
	fmt.Printf("%s %s\n", c.dim.Render("■ stopped"), c.dim.Render(fmt.Sprintf("%.1fs", audio.Seconds())))
}

func (c *consoleListener) RecordingDiscarded(_, reason string) {
	fmt.Printf("%s\n", c.warn.Render("  discarded: "+reason))
}

func (c *consoleListener) SilenceChanged(_ string, silent bool) {
	if silent {
		fmt.Printf("%s\n", c.warn.Render("  no voice detected, still recording"))
		c.notifier.Send("No voice detected")
	} else {
		fmt.Printf("%s\n", c.ok.Render("  voice detected"))
	}
}

func (c *consoleListener) TranscriptionDone(_, text, strategy string) {
	fmt.Printf("%s %s %s\n", c.ok.Render("→"), text, c.dim.Render("("+strategy+")"))
	c.notifier.Send("Delivered: " + truncate(text, 60))
}

func (c *consoleListener) TranscriptionFailed(_ string, err error) {
	fmt.Printf("%s\n", c.fail.Render("  error: "+err.Error()))
	c.notifier.Send("Transcription failed")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}

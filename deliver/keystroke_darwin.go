//go:build darwin

package deliver

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/micmonay/keybd_event"
)

func osascript(timeout time.Duration, script string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w (%s)", err, out)
	}
	return nil
}

func scriptSetClipboard(text string) error {
	return osascript(5*time.Second,
		fmt.Sprintf(`set the clipboard to "%s"`, escapeScript(text)))
}

func scriptPasteCombo() error {
	return osascript(5*time.Second,
		`tell application "System Events" to keystroke "v" using command down`)
}

func simPasteCombo() error {
	if err := initKeys(); err != nil {
		return err
	}
	kb.Clear()
	kb.SetKeys(keybd_event.VK_V)
	kb.HasSuper(true) // Cmd+V
	return kb.Launching()
}

func scriptTypeString(text string) error {
	return osascript(30*time.Second,
		fmt.Sprintf(`tell application "System Events" to keystroke "%s"`, escapeScript(text)))
}

//go:build !darwin

package deliver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/micmonay/keybd_event"
)

func run(timeout time.Duration, stdin string, name string, args ...string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w (%s)", name, err, out)
	}
	return nil
}

func scriptSetClipboard(text string) error {
	return run(5*time.Second, text, "xsel", "-ib")
}

func scriptPasteCombo() error {
	return run(5*time.Second, "", "xdotool", "key", "--clearmodifiers", "ctrl+v")
}

func simPasteCombo() error {
	if err := initKeys(); err != nil {
		return err
	}
	kb.Clear()
	kb.SetKeys(keybd_event.VK_V)
	kb.HasCTRL(true) // Ctrl+V
	return kb.Launching()
}

func scriptTypeString(text string) error {
	return run(30*time.Second, "", "xdotool", "type", "--delay", "0", "--", text)
}

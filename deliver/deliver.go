// Package deliver inserts transcribed text into the application that
// currently holds input focus, via a paste or type strategy with ordered
// fallback steps.
package deliver

import (
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
)

type Mode string

const (
	ModePaste Mode = "paste"
	ModeType  Mode = "type"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModePaste, ModeType:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown delivery mode %q (use paste or type)", s)
}

// Outcome reports which strategy step ultimately ran and whether it worked.
// Delivery failures are never fatal to the caller.
type Outcome struct {
	Strategy string
	Err      error
}

func (o Outcome) Succeeded() bool { return o.Err == nil }

type Engine struct {
	mode        Mode
	charsPerSec float64
	sendDelay   time.Duration

	// each step is separately injectable so fallback order is testable
	setClipboard    func(string) error
	setClipboardAlt func(string) error
	pasteCombo      func() error
	pasteComboAlt   func() error
	typeScript      func(string) error
	typeChar        func(rune) error
	sleep           func(time.Duration)
}

// New builds an Engine wired to the platform's clipboard, scripting and
// keystroke-simulation mechanisms.
func New(mode Mode, charsPerSec float64, sendDelay time.Duration) *Engine {
	return &Engine{
		mode:            mode,
		charsPerSec:     charsPerSec,
		sendDelay:       sendDelay,
		setClipboard:    clipboard.WriteAll,
		setClipboardAlt: scriptSetClipboard,
		pasteCombo:      scriptPasteCombo,
		pasteComboAlt:   simPasteCombo,
		typeScript:      scriptTypeString,
		typeChar:        simTypeChar,
		sleep:           time.Sleep,
	}
}

// Deliver inserts text into the focused application. The send delay gives
// the target application time to regain focus before anything is sent.
func (e *Engine) Deliver(text string) Outcome {
	if text == "" {
		return Outcome{Strategy: "none"}
	}
	if e.sendDelay > 0 {
		e.sleep(e.sendDelay)
	}
	switch e.mode {
	case ModeType:
		return e.typeOut(text)
	default:
		return e.paste(text)
	}
}

func (e *Engine) paste(text string) Outcome {
	if err := e.setClipboard(text); err != nil {
		if altErr := e.setClipboardAlt(text); altErr != nil {
			return Outcome{
				Strategy: "paste",
				Err:      fmt.Errorf("clipboard set failed: %w", errors.Join(err, altErr)),
			}
		}
	}

	if err := e.pasteCombo(); err != nil {
		if altErr := e.pasteComboAlt(); altErr != nil {
			return Outcome{
				Strategy: "paste",
				Err:      fmt.Errorf("paste keystroke failed: %w", errors.Join(err, altErr)),
			}
		}
		return Outcome{Strategy: "paste-simulated"}
	}
	return Outcome{Strategy: "paste"}
}

func (e *Engine) typeOut(text string) Outcome {
	if err := e.typeScript(text); err == nil {
		return Outcome{Strategy: "type-script"}
	}

	rate := e.charsPerSec
	if rate < 1 {
		rate = 1
	}
	delay := time.Duration(float64(time.Second) / rate)
	for _, ch := range text {
		if err := e.typeChar(ch); err != nil {
			return Outcome{
				Strategy: "type-chars",
				Err:      fmt.Errorf("typing %q: %w", ch, err),
			}
		}
		e.sleep(delay)
	}
	return Outcome{Strategy: "type-chars"}
}

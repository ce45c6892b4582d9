package hotkey

import (
	"fmt"
	"strings"

	"golang.design/x/hotkey"
)

// modifier synonyms are normalized before the platform lookup
var modSynonyms = map[string]string{
	"control": "ctrl",
	"command": "cmd",
	"super":   "cmd",
	"win":     "cmd",
	"option":  "alt",
	"opt":     "alt",
}

var keyNames = map[string]hotkey.Key{
	"space":  hotkey.KeySpace,
	"enter":  hotkey.KeyReturn,
	"return": hotkey.KeyReturn,
	"esc":    hotkey.KeyEscape,
	"escape": hotkey.KeyEscape,
	"tab":    hotkey.KeyTab,
	"up":     hotkey.KeyUp,
	"down":   hotkey.KeyDown,
	"left":   hotkey.KeyLeft,
	"right":  hotkey.KeyRight,
}

var letterKeys = []hotkey.Key{
	hotkey.KeyA, hotkey.KeyB, hotkey.KeyC, hotkey.KeyD, hotkey.KeyE,
	hotkey.KeyF, hotkey.KeyG, hotkey.KeyH, hotkey.KeyI, hotkey.KeyJ,
	hotkey.KeyK, hotkey.KeyL, hotkey.KeyM, hotkey.KeyN, hotkey.KeyO,
	hotkey.KeyP, hotkey.KeyQ, hotkey.KeyR, hotkey.KeyS, hotkey.KeyT,
	hotkey.KeyU, hotkey.KeyV, hotkey.KeyW, hotkey.KeyX, hotkey.KeyY,
	hotkey.KeyZ,
}

var digitKeys = []hotkey.Key{
	hotkey.Key0, hotkey.Key1, hotkey.Key2, hotkey.Key3, hotkey.Key4,
	hotkey.Key5, hotkey.Key6, hotkey.Key7, hotkey.Key8, hotkey.Key9,
}

var fnKeys = []hotkey.Key{
	hotkey.KeyF1, hotkey.KeyF2, hotkey.KeyF3, hotkey.KeyF4, hotkey.KeyF5,
	hotkey.KeyF6, hotkey.KeyF7, hotkey.KeyF8, hotkey.KeyF9, hotkey.KeyF10,
	hotkey.KeyF11, hotkey.KeyF12,
}

func init() {
	for i, k := range letterKeys {
		keyNames[string(rune('a'+i))] = k
	}
	for i, k := range digitKeys {
		keyNames[string(rune('0'+i))] = k
	}
	for i, k := range fnKeys {
		keyNames[fmt.Sprintf("f%d", i+1)] = k
	}
}

// ParseKey parses a key spec like "ctrl+shift+space", "f8" or "q" into the
// modifiers and key to grab. Modifier synonyms (control≡ctrl, command≡cmd,
// option≡alt) are normalized. A bare modifier cannot be grabbed globally and
// is rejected with guidance.
func ParseKey(spec string) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "+")

	var mods []hotkey.Modifier
	var key hotkey.Key
	haveKey := false

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, 0, fmt.Errorf("empty component in key spec %q", spec)
		}
		name := p
		if syn, ok := modSynonyms[name]; ok {
			name = syn
		}
		if mod, ok := modifierNames[name]; ok {
			mods = append(mods, mod)
			continue
		}
		if haveKey {
			return nil, 0, fmt.Errorf("key spec %q has more than one non-modifier key", spec)
		}
		k, ok := keyNames[name]
		if !ok {
			return nil, 0, fmt.Errorf("unknown key %q in spec %q", p, spec)
		}
		key = k
		haveKey = true
	}

	if !haveKey {
		return nil, 0, fmt.Errorf(
			"bare modifier keys cannot be grabbed globally; combine with a key, e.g. %q", spec+"+space")
	}
	return mods, key, nil
}

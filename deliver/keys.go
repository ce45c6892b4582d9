package deliver

import (
	"fmt"
	"sync"
	"unicode"

	"github.com/micmonay/keybd_event"
)

var (
	kb     keybd_event.KeyBonding
	kbOnce sync.Once
	kbErr  error
)

func initKeys() error {
	kbOnce.Do(func() {
		kb, kbErr = keybd_event.NewKeyBonding()
	})
	return kbErr
}

var charKeys = map[rune]int{
	'a': keybd_event.VK_A, 'b': keybd_event.VK_B, 'c': keybd_event.VK_C,
	'd': keybd_event.VK_D, 'e': keybd_event.VK_E, 'f': keybd_event.VK_F,
	'g': keybd_event.VK_G, 'h': keybd_event.VK_H, 'i': keybd_event.VK_I,
	'j': keybd_event.VK_J, 'k': keybd_event.VK_K, 'l': keybd_event.VK_L,
	'm': keybd_event.VK_M, 'n': keybd_event.VK_N, 'o': keybd_event.VK_O,
	'p': keybd_event.VK_P, 'q': keybd_event.VK_Q, 'r': keybd_event.VK_R,
	's': keybd_event.VK_S, 't': keybd_event.VK_T, 'u': keybd_event.VK_U,
	'v': keybd_event.VK_V, 'w': keybd_event.VK_W, 'x': keybd_event.VK_X,
	'y': keybd_event.VK_Y, 'z': keybd_event.VK_Z,
	'0': keybd_event.VK_0, '1': keybd_event.VK_1, '2': keybd_event.VK_2,
	'3': keybd_event.VK_3, '4': keybd_event.VK_4, '5': keybd_event.VK_5,
	'6': keybd_event.VK_6, '7': keybd_event.VK_7, '8': keybd_event.VK_8,
	'9': keybd_event.VK_9,
	' ':  keybd_event.VK_SPACE,
	'\n': keybd_event.VK_ENTER,
	'\t': keybd_event.VK_TAB,
}

// simTypeChar synthesizes a single character keystroke. Only a conservative
// subset of keys maps portably to virtual key codes; anything else errors
// and surfaces in the delivery outcome.
func simTypeChar(ch rune) error {
	if err := initKeys(); err != nil {
		return err
	}

	shift := false
	lower := ch
	if unicode.IsUpper(ch) {
		shift = true
		lower = unicode.ToLower(ch)
	}

	code, ok := charKeys[lower]
	if !ok {
		return fmt.Errorf("no key mapping for %q", ch)
	}

	kb.Clear()
	kb.SetKeys(code)
	kb.HasSHIFT(shift)
	return kb.Launching()
}

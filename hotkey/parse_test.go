package hotkey

import (
	"strings"
	"testing"
)

func TestParseKeySynonyms(t *testing.T) {
	m1, k1, err := ParseKey("ctrl+shift+space")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	m2, k2, err := ParseKey("Control+Shift+Space")
	if err != nil {
		t.Fatalf("ParseKey: %v", err)
	}
	if k1 != k2 || len(m1) != len(m2) {
		t.Fatalf("synonym spec parsed differently: %v/%v vs %v/%v", m1, k1, m2, k2)
	}
	for i := range m1 {
		if m1[i] != m2[i] {
			t.Fatalf("modifier %d differs: %v vs %v", i, m1[i], m2[i])
		}
	}
}

func TestParseKeySingleChar(t *testing.T) {
	mods, key, err := ParseKey("q")
	if err != nil {
		t.Fatalf("ParseKey(q): %v", err)
	}
	if len(mods) != 0 {
		t.Fatalf("unexpected modifiers: %v", mods)
	}
	if key != keyNames["q"] {
		t.Fatalf("got key %v", key)
	}
}

func TestParseKeyFunctionKey(t *testing.T) {
	_, key, err := ParseKey("f8")
	if err != nil {
		t.Fatalf("ParseKey(f8): %v", err)
	}
	if key != keyNames["f8"] {
		t.Fatalf("got key %v", key)
	}
}

func TestParseKeyBareModifier(t *testing.T) {
	_, _, err := ParseKey("cmd")
	if err == nil {
		t.Fatal("expected error for bare modifier")
	}
	if !strings.Contains(err.Error(), "combine with a key") {
		t.Fatalf("error lacks guidance: %v", err)
	}
}

func TestParseKeyUnknown(t *testing.T) {
	if _, _, err := ParseKey("ctrl+bogus"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestParseKeyMultipleKeys(t *testing.T) {
	if _, _, err := ParseKey("a+b"); err == nil {
		t.Fatal("expected error for two non-modifier keys")
	}
}

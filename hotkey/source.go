package hotkey

import (
	"fmt"

	"golang.design/x/hotkey"
)

type xSource struct {
	hk      *hotkey.Hotkey
	esc     *hotkey.Hotkey
	keydown chan struct{}
	keyup   chan struct{}
	cancel  chan struct{}
	stop    chan struct{}
}

// New grabs the hotkey described by spec (e.g. "ctrl+shift+space") and,
// best-effort, a bare Escape key for cancelling an in-flight recording.
func New(spec string) (Source, error) {
	mods, key, err := ParseKey(spec)
	if err != nil {
		return nil, err
	}
	return &xSource{
		hk:      hotkey.New(mods, key),
		esc:     hotkey.New(nil, hotkey.KeyEscape),
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
		cancel:  make(chan struct{}, 1),
	}, nil
}

func (s *xSource) Register() error {
	if err := s.hk.Register(); err != nil {
		return fmt.Errorf("registering hotkey: %w", err)
	}
	// Escape may be claimed by another app. The recording still stops on
	// keyup, so losing the cancel key is not fatal.
	if err := s.esc.Register(); err != nil {
		s.esc = nil
	}
	s.stop = make(chan struct{})

	go func() {
		for {
			select {
			case <-s.hk.Keydown():
				select {
				case s.keydown <- struct{}{}:
				default:
				}
			case <-s.stop:
				return
			}
		}
	}()
	go func() {
		for {
			select {
			case <-s.hk.Keyup():
				select {
				case s.keyup <- struct{}{}:
				default:
				}
			case <-s.stop:
				return
			}
		}
	}()
	if s.esc != nil {
		go func() {
			for {
				select {
				case <-s.esc.Keydown():
					select {
					case s.cancel <- struct{}{}:
					default:
					}
				case <-s.stop:
					return
				}
			}
		}()
	}
	return nil
}

func (s *xSource) Unregister() {
	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.hk.Unregister()
	if s.esc != nil {
		s.esc.Unregister()
	}
}

func (s *xSource) Keydown() <-chan struct{} { return s.keydown }
func (s *xSource) Keyup() <-chan struct{}   { return s.keyup }
func (s *xSource) Cancel() <-chan struct{}  { return s.cancel }

package audio

import (
	"sync"
	"time"
)

// FakeContext is an in-memory Context for tests. Each capture it creates
// feeds Block to the callback every Interval until stopped.
type FakeContext struct {
	DeviceList []DeviceInfo
	DevErr     error
	CaptureErr error
	StartErr   error
	StopHang   bool // Stop blocks until ReleaseStop, like a wedged driver
	Block      []float32
	Interval   time.Duration

	mu       sync.Mutex
	captures []*FakeCapture
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) {
	if f.DevErr != nil {
		return nil, f.DevErr
	}
	return f.DeviceList, nil
}

func (f *FakeContext) NewCapture(device *DeviceInfo, _ CaptureConfig) (Capture, error) {
	if f.CaptureErr != nil {
		return nil, f.CaptureErr
	}
	interval := f.Interval
	if interval == 0 {
		interval = 10 * time.Millisecond
	}
	c := &FakeCapture{
		block:       f.Block,
		interval:    interval,
		startErr:    f.StartErr,
		stopHang:    f.StopHang,
		hangRelease: make(chan struct{}),
		device:      device,
	}
	f.mu.Lock()
	f.captures = append(f.captures, c)
	f.mu.Unlock()
	return c, nil
}

func (f *FakeContext) Close() {}

// Captures returns every capture created so far.
func (f *FakeContext) Captures() []*FakeCapture {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*FakeCapture, len(f.captures))
	copy(out, f.captures)
	return out
}

type FakeCapture struct {
	block       []float32
	interval    time.Duration
	startErr    error
	stopHang    bool
	hangRelease chan struct{}
	releaseOnce sync.Once
	device      *DeviceInfo

	mu       sync.Mutex
	cb       DataCallback
	stopCh   chan struct{}
	feedDone chan struct{}
	started  bool
	stopped  bool
	closed   bool
}

func (c *FakeCapture) SetCallback(cb DataCallback) {
	c.mu.Lock()
	c.cb = cb
	c.mu.Unlock()
}

func (c *FakeCapture) ClearCallback() {
	c.mu.Lock()
	c.cb = nil
	c.mu.Unlock()
}

func (c *FakeCapture) Start() error {
	if c.startErr != nil {
		return c.startErr
	}
	c.mu.Lock()
	c.started = true
	c.stopCh = make(chan struct{})
	c.feedDone = make(chan struct{})
	stop, done := c.stopCh, c.feedDone
	c.mu.Unlock()

	go func() {
		defer close(done)
		for {
			select {
			case <-stop:
				return
			case <-time.After(c.interval):
			}
			c.mu.Lock()
			cb := c.cb
			c.mu.Unlock()
			if cb != nil && len(c.block) > 0 {
				block := make([]float32, len(c.block))
				copy(block, c.block)
				cb(block, uint32(len(block)))
			}
		}
	}()
	return nil
}

func (c *FakeCapture) Stop() {
	c.mu.Lock()
	c.stopped = true
	hang := c.stopHang
	stop, done := c.stopCh, c.feedDone
	c.mu.Unlock()
	if hang {
		<-c.hangRelease
	}
	if stop == nil {
		return
	}
	select {
	case <-stop:
	default:
		close(stop)
	}
	<-done
}

func (c *FakeCapture) Close() {
	c.Stop()
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// ReleaseStop unblocks a hung Stop. Safe to call more than once.
func (c *FakeCapture) ReleaseStop() {
	c.releaseOnce.Do(func() { close(c.hangRelease) })
}

func (c *FakeCapture) DeviceName() string {
	if c.device != nil {
		return c.device.Name
	}
	return "fake"
}

func (c *FakeCapture) Started() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.started
}

func (c *FakeCapture) Stopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

func (c *FakeCapture) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

package hotkey

type FakeSource struct {
	keydown chan struct{}
	keyup   chan struct{}
	cancel  chan struct{}
}

func NewFake() *FakeSource {
	return &FakeSource{
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
		cancel:  make(chan struct{}, 1),
	}
}

func (f *FakeSource) Register() error { return nil }
func (f *FakeSource) Unregister()     {}

func (f *FakeSource) Keydown() <-chan struct{} { return f.keydown }
func (f *FakeSource) Keyup() <-chan struct{}   { return f.keyup }
func (f *FakeSource) Cancel() <-chan struct{}  { return f.cancel }

func (f *FakeSource) SimKeydown() { f.keydown <- struct{}{} }
func (f *FakeSource) SimKeyup()   { f.keyup <- struct{}{} }
func (f *FakeSource) SimCancel()  { f.cancel <- struct{}{} }

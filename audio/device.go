package audio

// PickDevice chooses a capture device following the built-in-mic heuristic:
// prefer a device whose name matches the laptop's built-in microphone
// (rejecting iPhone continuity mics), then the system default input unless
// it is a continuity mic, then nil (backend default). The returned rate is
// the chosen device's default sample rate, or DefaultSampleRate when no
// device was chosen or the device does not report one.
func PickDevice(devices []DeviceInfo) (*DeviceInfo, int) {
	for i := range devices {
		d := &devices[i]
		if d.MaxInputChannels <= 0 {
			continue
		}
		if IsBuiltIn(d.Name) {
			return d, deviceRate(d)
		}
	}
	for i := range devices {
		d := &devices[i]
		if d.IsDefault && d.MaxInputChannels > 0 {
			if IsContinuityMic(d.Name) {
				break
			}
			return d, deviceRate(d)
		}
	}
	return nil, DefaultSampleRate
}

// ByIndex returns the device at the given enumeration index, or nil.
func ByIndex(devices []DeviceInfo, index int) *DeviceInfo {
	for i := range devices {
		if devices[i].Index == index {
			return &devices[i]
		}
	}
	return nil
}

func deviceRate(d *DeviceInfo) int {
	if d.DefaultSampleRate > 0 {
		return d.DefaultSampleRate
	}
	return DefaultSampleRate
}

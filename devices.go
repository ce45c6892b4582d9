package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"voicetype/audio"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List capture devices",
	Long:  "Lists the available microphone devices with the index usable for --device.",
	RunE:  runDevices,
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}

func runDevices(cmd *cobra.Command, args []string) error {
	actx, err := audio.NewContext()
	if err != nil {
		return fmt.Errorf("initializing audio: %w", err)
	}
	defer actx.Close()

	devices, err := actx.Devices()
	if err != nil {
		return fmt.Errorf("listing devices: %w", err)
	}
	if len(devices) == 0 {
		fmt.Println("No capture devices found.")
		return nil
	}

	picked, _ := audio.PickDevice(devices)
	for _, d := range devices {
		if d.MaxInputChannels <= 0 {
			continue
		}
		marks := ""
		if d.IsDefault {
			marks += " (default)"
		}
		if audio.IsContinuityMic(d.Name) {
			marks += " [iPhone mic]"
		}
		if picked != nil && picked.Index == d.Index {
			marks += " *"
		}
		rate := d.DefaultSampleRate
		if rate == 0 {
			rate = audio.DefaultSampleRate
		}
		fmt.Printf("%3d  %s%s  %d Hz\n", d.Index, d.Name, marks, rate)
	}
	if picked != nil {
		fmt.Println("\n* auto-picked")
	}
	return nil
}

package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"voicetype/audio"
	"voicetype/config"
	"voicetype/deliver"
	"voicetype/hotkey"
	"voicetype/lockfile"
	"voicetype/log"
	"voicetype/notify"
	"voicetype/recorder"
	"voicetype/transcriber"
)

var (
	flagConfig    string
	flagKey       string
	flagDevice    int
	flagSetup     bool
	flagMode      string
	flagLang      string
	flagModel     string
	flagAPIBase   string
	flagCPS       int
	flagSendDelay float64
	flagSaveAudio bool
	flagAudioDir  string
	flagSaveText  bool
	flagTextDir   string
	flagLogPath   string
	flagLogLevel  string
	flagNotify    bool
)

var rootCmd = &cobra.Command{
	Use:   "voicetype",
	Short: "Push-to-talk dictation into the focused application",
	Long: `voicetype records the microphone while a hotkey is held, transcribes
the clip with a Whisper-compatible API and pastes or types the text
into whatever application has focus.

Hold the hotkey, speak, release. Press Escape during a recording to
discard it; press Escape while idle to quit.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "config file (default: ~/.config/voicetype/config.toml)")
	f.StringVar(&flagKey, "key", "", "push-to-talk hotkey, e.g. ctrl+shift+space or f8")
	f.IntVar(&flagDevice, "device", -1, "capture device index (see 'voicetype devices'); -1 = auto")
	f.BoolVar(&flagSetup, "setup", false, "pick the microphone interactively")
	f.StringVar(&flagMode, "mode", "", "delivery mode: paste or type")
	f.StringVar(&flagLang, "lang", "", "language hint for transcription (e.g. en, de); empty = auto-detect")
	f.StringVar(&flagModel, "model", "", "transcription model")
	f.StringVar(&flagAPIBase, "api-base", "", "OpenAI-compatible API base URL")
	f.IntVar(&flagCPS, "cps", 0, "typing speed in characters per second (type mode)")
	f.Float64Var(&flagSendDelay, "send-delay", -1, "seconds to wait before delivering, to let modifiers settle")
	f.BoolVar(&flagSaveAudio, "save-audio", false, "keep a WAV copy of every recording")
	f.StringVar(&flagAudioDir, "audio-dir", "", "directory for saved recordings")
	f.BoolVar(&flagSaveText, "save-text", false, "keep a text file per transcription")
	f.StringVar(&flagTextDir, "text-dir", "", "directory for saved transcriptions")
	f.StringVar(&flagLogPath, "logpath", "", "log directory (default: OS-specific location)")
	f.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&flagNotify, "notify", false, "send desktop notifications")
}

// applyFlagOverrides lets explicit flags win over the config file.
func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command) {
	f := cmd.Flags()
	if f.Changed("key") {
		cfg.Hotkey.Key = flagKey
	}
	if f.Changed("device") {
		cfg.Recording.Device = flagDevice
	}
	if f.Changed("mode") {
		cfg.Delivery.Mode = flagMode
	}
	if f.Changed("lang") {
		cfg.Transcriber.Language = flagLang
	}
	if f.Changed("model") {
		cfg.Transcriber.Model = flagModel
	}
	if f.Changed("api-base") {
		cfg.Transcriber.APIBase = flagAPIBase
	}
	if f.Changed("cps") {
		cfg.Delivery.CharsPerSecond = flagCPS
	}
	if f.Changed("send-delay") {
		cfg.Delivery.SendDelay = flagSendDelay
	}
	if f.Changed("save-audio") {
		cfg.Output.SaveAudio = flagSaveAudio
	}
	if f.Changed("audio-dir") {
		cfg.Output.AudioDir = flagAudioDir
	}
	if f.Changed("save-text") {
		cfg.Output.SaveText = flagSaveText
	}
	if f.Changed("text-dir") {
		cfg.Output.TextDir = flagTextDir
	}
	if f.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if f.Changed("notify") {
		cfg.Notify.Enabled = flagNotify
	}
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, cmd)

	mode, err := deliver.ParseMode(cfg.Delivery.Mode)
	if err != nil {
		return err
	}

	logDir := flagLogPath
	if logDir == "" {
		logDir = cfg.Log.Dir
	}
	resolved, err := log.ResolveDir(logDir)
	if err != nil {
		return fmt.Errorf("resolving log directory: %w", err)
	}
	log.SetDir(resolved)
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	if err := log.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging unavailable: %v\n", err)
		log.SetDir("")
		if err := log.Init(); err != nil {
			return err
		}
	}
	defer log.Close()

	lock, err := lockfile.Acquire(lockfile.DefaultPath())
	if err != nil {
		return err
	}
	defer lock.Release()

	tr, err := transcriber.New(transcriber.Config{
		APIBase:  cfg.Transcriber.APIBase,
		APIKey:   cfg.Transcriber.APIKey,
		Model:    cfg.Transcriber.Model,
		Language: cfg.Transcriber.Language,
	})
	if err != nil {
		return err
	}

	actx, err := audio.NewContext()
	if err != nil {
		return fmt.Errorf("initializing audio: %w", err)
	}
	defer actx.Close()

	device, sampleRate, err := resolveDevice(actx, cfg)
	if err != nil {
		return err
	}

	// artifacts default to subdirectories of the log location
	if cfg.Output.SaveAudio && cfg.Output.AudioDir == "" {
		cfg.Output.AudioDir = filepath.Join(log.Dir(), "recordings")
	}
	if cfg.Output.SaveText && cfg.Output.TextDir == "" {
		cfg.Output.TextDir = filepath.Join(log.Dir(), "transcripts")
	}

	engine := deliver.New(mode, float64(cfg.Delivery.CharsPerSecond), config.Seconds(cfg.Delivery.SendDelay))
	notifier := notify.New(cfg.Notify.Enabled)
	console := newConsoleListener(notifier)

	rec := recorder.New(recorder.Options{
		Policy: recorder.Policy{
			ToggleCooldown: config.Seconds(cfg.Recording.ToggleCooldown),
			MinRecord:      config.Seconds(cfg.Recording.MinRecord),
			PostRoll:       config.Seconds(cfg.Recording.PostRoll),
		},
		Context:     actx,
		Device:      device,
		SampleRate:  sampleRate,
		Transcriber: tr,
		Deliverer:   engine,
		Listener:    console,
		SilenceWarn: config.Seconds(cfg.Recording.SilenceWarn),
		SaveAudio:   cfg.Output.SaveAudio,
		AudioDir:    cfg.Output.AudioDir,
		SaveText:    cfg.Output.SaveText,
		TextDir:     cfg.Output.TextDir,
	})

	hk, err := hotkey.New(cfg.Hotkey.Key)
	if err != nil {
		return err
	}
	if err := hk.Register(); err != nil {
		return fmt.Errorf("registering hotkey %q: %w", cfg.Hotkey.Key, err)
	}
	defer hk.Unregister()

	console.Banner(cfg.Hotkey.Key, deviceName(device), tr.Name())
	log.Infof("ready, hotkey %s, delivery %s", cfg.Hotkey.Key, cfg.Delivery.Mode)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-hk.Keydown():
			if err := rec.Start(); err != nil {
				log.Errorf("recording start failed: %v", err)
				console.Errorf("recording failed: %v", err)
			}
		case <-hk.Keyup():
			rec.RequestStop()
		case <-hk.Cancel():
			if !rec.Cancel() {
				log.Info("quit")
				rec.StopWait()
				return nil
			}
		case <-sigChan:
			fmt.Fprintln(os.Stderr)
			log.Info("shutdown")
			rec.StopWait()
			return nil
		}
	}
}

// resolveDevice applies, in order: interactive setup, an explicit index,
// the built-in-mic heuristic.
func resolveDevice(actx audio.Context, cfg *config.Config) (*audio.DeviceInfo, int, error) {
	devices, err := actx.Devices()
	if err != nil {
		return nil, 0, fmt.Errorf("listing devices: %w", err)
	}

	var device *audio.DeviceInfo
	rate := audio.DefaultSampleRate
	switch {
	case flagSetup:
		device, err = audio.SelectDevice(actx)
		if err != nil {
			log.Warnf("device selection failed: %v, using default", err)
			device = nil
		}
	case cfg.Recording.Device >= 0:
		device = audio.ByIndex(devices, cfg.Recording.Device)
		if device == nil {
			return nil, 0, fmt.Errorf("no capture device with index %d (see 'voicetype devices')", cfg.Recording.Device)
		}
	default:
		device, rate = audio.PickDevice(devices)
	}

	if device != nil && device.DefaultSampleRate > 0 {
		rate = device.DefaultSampleRate
	}
	if cfg.Recording.SampleRate > 0 {
		rate = cfg.Recording.SampleRate
	}
	return device, rate, nil
}

func deviceName(device *audio.DeviceInfo) string {
	if device == nil {
		return "system default"
	}
	return device.Name
}

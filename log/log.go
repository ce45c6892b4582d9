// Package log wraps zerolog with console output on stderr and optional
// file diagnostics plus a plain transcript log.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	diagLog        zerolog.Logger
	diagFile       *os.File
	transcribeFile *os.File
	logMu          sync.Mutex
	logReady       bool
	pid            int
	dir            string
)

// Metrics summarizes one transcription round trip.
type Metrics struct {
	AudioLengthS     float64
	CompressedSizeKB float64
	EncodeTimeMs     float64
	TotalTimeMs      float64
}

// ResolveDir decides where file logs go: flag, then VOICETYPE_LOG_PATH,
// then the OS default. An empty result means console-only logging.
func ResolveDir(flagPath string) (string, error) {
	if flagPath != "" {
		return absPath(flagPath)
	}
	if envPath := os.Getenv("VOICETYPE_LOG_PATH"); envPath != "" {
		return absPath(envPath)
	}
	return getDefaultDir()
}

func absPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, p), nil
}

func SetDir(d string) {
	dir = d
}

func Dir() string {
	return dir
}

// SetLevel applies a level name like "debug" or "warn".
func SetLevel(name string) error {
	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("unknown log level %q", name)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// Init opens the loggers. Console output always goes to stderr; when a
// directory is set, diagnostics and transcript files are opened there too.
func Init() error {
	logMu.Lock()
	defer logMu.Unlock()

	pid = os.Getpid()

	writers := []io.Writer{zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}}

	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}

		var err error
		diagPath := filepath.Join(dir, "diagnostics_log.txt")
		diagFile, err = os.OpenFile(diagPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        diagFile,
			TimeFormat: "2006-01-02 15:04:05",
			NoColor:    true,
		})

		transcribePath := filepath.Join(dir, "transcribe_log.txt")
		transcribeFile, err = os.OpenFile(transcribePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			diagFile.Close()
			diagFile = nil
			return err
		}
	}

	diagLog = zerolog.New(zerolog.MultiLevelWriter(writers...)).
		With().Timestamp().Int("pid", pid).Logger()

	logReady = true
	return nil
}

func Close() {
	logMu.Lock()
	defer logMu.Unlock()
	if diagFile != nil {
		diagFile.Close()
		diagFile = nil
	}
	if transcribeFile != nil {
		transcribeFile.Close()
		transcribeFile = nil
	}
	logReady = false
}

func Debug(msg string) {
	if logReady {
		diagLog.Debug().Msg(msg)
	}
}

func Debugf(format string, args ...any) {
	if logReady {
		diagLog.Debug().Msg(fmt.Sprintf(format, args...))
	}
}

func Info(msg string) {
	if logReady {
		diagLog.Info().Msg(msg)
	}
}

func Infof(format string, args ...any) {
	if logReady {
		diagLog.Info().Msg(fmt.Sprintf(format, args...))
	}
}

func Warn(msg string) {
	if logReady {
		diagLog.Warn().Msg(msg)
	}
}

func Warnf(format string, args ...any) {
	if logReady {
		diagLog.Warn().Msg(fmt.Sprintf(format, args...))
	}
}

func Error(msg string) {
	if logReady {
		diagLog.Error().Msg(msg)
	}
}

func Errorf(format string, args ...any) {
	if logReady {
		diagLog.Error().Msg(fmt.Sprintf(format, args...))
	}
}

// TranscriptionMetrics logs one structured line per finished transcription.
func TranscriptionMetrics(m Metrics, provider, session string) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("provider", provider).
		Str("session", session).
		Float64("audio_s", m.AudioLengthS).
		Float64("compressed_kb", m.CompressedSizeKB).
		Float64("encode_ms", m.EncodeTimeMs).
		Float64("total_ms", m.TotalTimeMs).
		Msg("transcription")
}

// TranscriptionText appends the delivered text to the transcript file.
func TranscriptionText(text string) {
	if !logReady || transcribeFile == nil {
		return
	}
	logMu.Lock()
	defer logMu.Unlock()
	line := fmt.Sprintf("%s\t[%d]\t%s\n", time.Now().Format("2006-01-02 15:04:05"), pid, text)
	transcribeFile.WriteString(line)
}

// SessionStart notes a new recording session.
func SessionStart(session, device string, sampleRate int) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("session", session).
		Str("device", device).
		Int("sample_rate", sampleRate).
		Msg("session_start")
}

// SessionEnd notes a finished session and its captured length.
func SessionEnd(session string, audioS float64) {
	if !logReady {
		return
	}
	diagLog.Info().
		Str("session", session).
		Float64("audio_s", audioS).
		Msg("session_end")
}

package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log  zerolog.Logger
	once sync.Once
)

// Get returns the process-wide logger. The level is fixed by the first call;
// pass true to enable debug output.
func Get(debug ...bool) zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		if len(debug) > 0 && debug[0] {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log = zerolog.New(out).With().Timestamp().Logger()
	})
	return log
}

package logger

import (
	"os"

	"github.com/rs/zerolog"
)

var Log zerolog.Logger

// Init sets up the global logger writing to stdout and logs/server.log.
// Storage-engine error text goes through here and is never echoed back
// to API clients.
func Init() {
	if err := os.MkdirAll("logs", os.ModePerm); err != nil {
		panic(err)
	}

	file, err := os.OpenFile("logs/server.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		panic(err)
	}

	multi := zerolog.MultiLevelWriter(os.Stdout, file)
	Log = zerolog.New(multi).With().Timestamp().Logger()
}

func init() {
	// Tests and library consumers get a stderr logger until Init runs.
	Log = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

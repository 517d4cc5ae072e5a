package logger

import (
	"log"

	"go.uber.org/zap"
)

var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// Init builds the global loggers. Call once from main before anything logs.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	Log = l
	SLog = l.Sugar()
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

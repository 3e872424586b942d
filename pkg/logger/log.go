package logger

import (
	"os"

	"go.uber.org/zap"
)

// NewLogger écrit en double: console pour le dev, fichier pour l'exploitation.
func NewLogger() *zap.Logger {
	if err := os.MkdirAll("./logs", 0o755); err != nil {
		panic(err)
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      []string{"stdout", "./logs/app.log"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	log, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return log
}

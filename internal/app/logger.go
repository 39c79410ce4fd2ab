package app

import (
	"github.com/guttosm/lysate-impact/config"
	"github.com/guttosm/lysate-impact/internal/logger"
)

// InitializeLogger initializes the JSON logger from the log configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}

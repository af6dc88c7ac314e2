package main

import (
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	console := di.InitializeConsole()
	console.Serve()
}

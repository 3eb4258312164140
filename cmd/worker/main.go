package main

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/deployappsa/absensi/internal/app"
)

func main() {
	_ = godotenv.Load()

	cfg := app.LoadConfig()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("run worker failed", zap.Error(err))
	}
}

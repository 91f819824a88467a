package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
)

var Log *zap.Logger

func Init() {
	var err error

	if os.Getenv("APP_ENV") == "production" {
		Log, err = zap.NewProduction()
	} else {
		Log, err = zap.NewDevelopment()
	}

	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
}

func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}

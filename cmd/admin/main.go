package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/Astemirdum/bookstore-admin/admin/app"
	"github.com/Astemirdum/bookstore-admin/admin/config"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title           Bookstore Admin API
// @version         1.0
// @description     Admin console for books, orders and sales dashboard.
// @BasePath        /api/v1
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from .env ", zap.Error(err))
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(cfg)
}

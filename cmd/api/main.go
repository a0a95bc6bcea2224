package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/carelinkhq/telemed-scheduler/internal/config"
	dbpkg "github.com/carelinkhq/telemed-scheduler/internal/db"
	"github.com/carelinkhq/telemed-scheduler/internal/middleware"
	"github.com/carelinkhq/telemed-scheduler/internal/routes"
)

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	log, err := zapCfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}

func main() {

	// .env is optional, container environments inject config directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := newLogger(cfg.LogLevel)
	defer log.Sync()

	db := dbpkg.NewDB(cfg, log)
	rdb := dbpkg.NewRedis(cfg, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

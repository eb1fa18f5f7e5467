package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/openlink/internal/inspect"
	"github.com/danmuck/openlink/internal/logging"
	"github.com/danmuck/openlink/internal/observability"
	"github.com/danmuck/openlink/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	path := flag.String("config", "cmd/inspectd/config.toml", "inspectd config path")
	flag.Parse()

	logging.ConfigureRuntime()
	observability.InitLogger("inspectd")
	gin.SetMode(gin.ReleaseMode)

	if err := run(*path); err != nil {
		fmt.Fprintf(os.Stderr, "inspectd: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := loadServiceConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("config", path).Msg("config not found, using defaults")
		cfg, err = inspect.DefaultServiceConfig(), nil
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return server.New(inspect.NewService(cfg)).Serve(ctx)
}

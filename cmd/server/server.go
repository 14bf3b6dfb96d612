package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/sirupsen/logrus"
	"github.com/studyline/lessons-api/api"
	"github.com/studyline/lessons-api/config"
	"github.com/studyline/lessons-api/core/lesson"
	"github.com/studyline/lessons-api/database"
	"github.com/studyline/lessons-api/rate"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	logger.Infof("starting server")
	defer logger.Info("shutdown complete")

	const prefix = "LESSONS"
	var cfg config.Config
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := database.Open(ctx, cfg.DB)
	cancel()
	if err != nil {
		return fmt.Errorf("failed to open db connection: %w", err)
	}

	if cfg.DB.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		n, err := lesson.Seed(ctx, db)
		cancel()
		if err != nil {
			return fmt.Errorf("seeding lessons: %w", err)
		}
		if n > 0 {
			logger.Infof("seeded %d lessons", n)
		}
	}

	var limiter *rate.Limiter
	if cfg.Rate.RPS > 0 {
		limiter = rate.New(cfg.Rate.RPS, cfg.Rate.Burst, cfg.Rate.Expiry)
		defer limiter.Stop()
	}

	mux := api.APIMux(api.APIConfig{
		CorsOrigin: cfg.Cors.Origin,
		Log:        logger,
		DB:         db,
		ImagesDir:  cfg.Images.Dir,
		Limiter:    limiter,
	})

	srv := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}

		if err := database.Close(ctx, db); err != nil {
			return fmt.Errorf("could not close the store connection: %w", err)
		}
	}
	return nil
}

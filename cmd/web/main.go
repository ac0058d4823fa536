package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Ravi-kumar178/ccjewllery/internal/admin"
	"github.com/Ravi-kumar178/ccjewllery/internal/cart"
	"github.com/Ravi-kumar178/ccjewllery/internal/catalog"
	"github.com/Ravi-kumar178/ccjewllery/internal/checkout"
	"github.com/Ravi-kumar178/ccjewllery/internal/config"
	"github.com/Ravi-kumar178/ccjewllery/internal/httpserver"
	"github.com/Ravi-kumar178/ccjewllery/internal/session"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("parse configuration")
	}
	if cfg.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	backend := upstream.New(cfg.BackendBaseURL(), cfg.BackendTimeout, log)
	carts := cart.NewStore()
	sessions := session.NewManager(cfg.AdminTokenTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, log, httpserver.Deps{
		Carts:    carts,
		Catalog:  catalog.New(backend),
		Checkout: checkout.New(carts, backend, cfg.RazorpayKeySecret, log),
		Admin:    admin.New(backend, log),
		Sessions: sessions,
		Backend:  backend,

		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,

		RazorpayKeyID:     cfg.RazorpayKeyID,
		StripePublishable: cfg.StripePublishable,

		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		log.WithError(err).Fatal("init server")
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"addr": cfg.HTTPAddr, "backend": cfg.BackendBaseURL()}).Info("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		log.WithField("signal", sig.String()).Info("shutting down")
	case err := <-serverErr:
		log.WithError(err).Error("server error")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		return
	}
	log.Info("server stopped")
}

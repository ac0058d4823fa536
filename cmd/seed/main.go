package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Ravi-kumar178/ccjewllery/internal/config"
	"github.com/Ravi-kumar178/ccjewllery/internal/seed"
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

	backend := upstream.New(cfg.BackendBaseURL(), cfg.BackendTimeout, log)
	seeder := seed.New(backend, log)

	applied, err := seeder.Apply(context.Background(), seed.Catalog())
	if err != nil {
		log.WithError(err).WithField("applied", applied).Fatal("seed failed")
	}
	log.WithField("applied", applied).Info("seed complete")
}

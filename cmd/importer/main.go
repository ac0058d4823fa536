package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Ravi-kumar178/ccjewllery/internal/config"
	"github.com/Ravi-kumar178/ccjewllery/internal/importer"
	"github.com/Ravi-kumar178/ccjewllery/internal/seed"
	"github.com/Ravi-kumar178/ccjewllery/internal/upstream"
)

func main() {
	_ = godotenv.Load()

	file := flag.String("file", "", "catalog CSV file to import")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if *file == "" {
		log.Fatal("-file is required")
	}

	cfg, err := config.FromEnv()
	if err != nil {
		log.WithError(err).Fatal("parse configuration")
	}

	f, err := os.Open(*file)
	if err != nil {
		log.WithError(err).Fatal("open catalog file")
	}
	defer f.Close()

	items, err := importer.NewCSVImporter(f).Parse()
	if err != nil {
		log.WithError(err).Fatal("parse catalog file")
	}

	backend := upstream.New(cfg.BackendBaseURL(), cfg.BackendTimeout, log)
	seeder := seed.New(backend, log)

	applied, err := seeder.Apply(context.Background(), items)
	if err != nil {
		log.WithError(err).WithField("applied", applied).Fatal("import failed")
	}
	log.WithField("applied", applied).Info("import complete")
}

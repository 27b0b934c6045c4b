// Command importcatalog loads a JSON catalog feed into the database. With
// -images, component images are mirrored into the configured storage and
// the stored URL replaces the feed's.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"ihlutir.is/app/internal/config"
	"ihlutir.is/app/internal/modules/catalog"
	"ihlutir.is/app/internal/storage"
)

func main() {
	file := flag.String("file", "catalog.json", "path to the JSON feed")
	images := flag.Bool("images", false, "mirror component images into storage")
	flag.Parse()

	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(context.Background(), logger, *file, *images); err != nil {
		logger.Error("import_failed", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, file string, mirror bool) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	feed, err := catalog.ParseFeed(f)
	if err != nil {
		return err
	}

	components := make([]catalog.Component, 0, len(feed))
	for _, it := range feed {
		c, err := it.Component()
		if err != nil {
			return err
		}
		components = append(components, c)
	}

	if mirror {
		st, err := storage.FromEnv(ctx)
		if err != nil {
			return err
		}
		logger.Info("image_storage", slog.String("driver", st.Driver))
		client := &http.Client{Timeout: 20 * time.Second}
		for i, c := range components {
			if c.Image == "" {
				continue
			}
			res, err := storage.Mirror(ctx, client, st.Storage, c.ID, c.Image)
			if err != nil {
				logger.Warn("image_mirror_failed", slog.String("component_id", c.ID), slog.Any("err", err))
				continue
			}
			components[i].Image = res.URL
		}
	}

	db, err := config.OpenDB(cfg)
	if err != nil {
		return err
	}
	svc := catalog.NewService(catalog.NewGormStore(db), logger)
	if err := svc.Import(ctx, components); err != nil {
		return err
	}

	logger.Info("import_done", slog.String("file", file), slog.Int("components", len(components)))
	return nil
}

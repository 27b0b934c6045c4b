// Command migrate creates the catalog and build tables.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"ihlutir.is/app/internal/config"
)

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS components (
  id VARCHAR(96) NOT NULL,
  slot VARCHAR(32) NOT NULL,
  name VARCHAR(255) NOT NULL,
  image VARCHAR(512) NOT NULL DEFAULT '',
  attributes JSON NULL,
  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  PRIMARY KEY (id),
  KEY ix_components_slot (slot)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS offerings (
  id CHAR(36) NOT NULL,
  component_id VARCHAR(96) NOT NULL,
  retailer_name VARCHAR(128) NOT NULL,
  price BIGINT NOT NULL,
  url VARCHAR(1024) NOT NULL,
  disabled BOOLEAN NOT NULL DEFAULT FALSE,
  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  PRIMARY KEY (id),
  KEY ix_offerings_component_id (component_id),
  CONSTRAINT fk_offerings_component FOREIGN KEY (component_id) REFERENCES components(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS builds (
  id VARCHAR(32) NOT NULL,
  created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;

CREATE TABLE IF NOT EXISTS build_slots (
  build_id VARCHAR(32) NOT NULL,
  slot VARCHAR(32) NOT NULL,
  component_id VARCHAR(96) NOT NULL,
  offering_id CHAR(36) NOT NULL,
  updated_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3),
  PRIMARY KEY (build_id, slot),
  CONSTRAINT fk_build_slots_build FOREIGN KEY (build_id) REFERENCES builds(id) ON DELETE CASCADE
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS components (
  id VARCHAR(96) PRIMARY KEY,
  slot VARCHAR(32) NOT NULL,
  name VARCHAR(255) NOT NULL,
  image VARCHAR(512) NOT NULL DEFAULT '',
  attributes JSONB NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_components_slot ON components (slot);

CREATE TABLE IF NOT EXISTS offerings (
  id CHAR(36) PRIMARY KEY,
  component_id VARCHAR(96) NOT NULL REFERENCES components(id) ON DELETE CASCADE,
  retailer_name VARCHAR(128) NOT NULL,
  price BIGINT NOT NULL,
  url VARCHAR(1024) NOT NULL,
  disabled BOOLEAN NOT NULL DEFAULT FALSE,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS ix_offerings_component_id ON offerings (component_id);

CREATE TABLE IF NOT EXISTS builds (
  id VARCHAR(32) PRIMARY KEY,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS build_slots (
  build_id VARCHAR(32) NOT NULL REFERENCES builds(id) ON DELETE CASCADE,
  slot VARCHAR(32) NOT NULL,
  component_id VARCHAR(96) NOT NULL,
  offering_id CHAR(36) NOT NULL,
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (build_id, slot)
);
`

func main() {
	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg, err := config.FromEnv()
	if err != nil {
		logger.Error("config", slog.Any("err", err))
		os.Exit(1)
	}
	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Error("open_db", slog.Any("err", err))
		os.Exit(1)
	}

	schema := mysqlSchema
	if cfg.DBDriver == "postgres" {
		schema = postgresSchema
	}

	// The mysql DSN needs multiStatements=true for a single Exec.
	if err := db.Exec(schema).Error; err != nil {
		logger.Error("migrate_failed", slog.String("driver", cfg.DBDriver), slog.Any("err", err))
		os.Exit(1)
	}
	logger.Info("migrate_done", slog.String("driver", cfg.DBDriver))
}

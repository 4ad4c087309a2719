package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  email      TEXT        NOT NULL UNIQUE,
  phone      TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_shelters",
		SQL: `CREATE TABLE IF NOT EXISTS shelters (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name       TEXT        NOT NULL,
  city       TEXT        NOT NULL,
  address    TEXT        NOT NULL DEFAULT '',
  phone      TEXT        NOT NULL DEFAULT '',
  admin_id   UUID        NOT NULL REFERENCES users (id),
  opens_at   SMALLINT    NOT NULL CHECK (opens_at >= 0 AND opens_at < 1440),
  closes_at  SMALLINT    NOT NULL CHECK (closes_at > 0 AND closes_at <= 1440),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK (opens_at < closes_at)
);`,
	},
	{
		Name: "create_table_breeds",
		SQL: `CREATE TABLE IF NOT EXISTS breeds (
  id          UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT NOT NULL,
  species     TEXT NOT NULL,
  description TEXT NOT NULL DEFAULT ''
);`,
	},
	{
		Name: "create_table_animals",
		SQL: `CREATE TABLE IF NOT EXISTS animals (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  name        TEXT        NOT NULL,
  species     TEXT        NOT NULL,
  breed_id    UUID        NOT NULL REFERENCES breeds (id),
  shelter_id  UUID        NOT NULL REFERENCES shelters (id),
  age_months  INT         NOT NULL CHECK (age_months >= 0),
  sex         TEXT        NOT NULL,
  description TEXT        NOT NULL DEFAULT '',
  state       TEXT        NOT NULL DEFAULT 'available',
  owner_id    UUID        NULL REFERENCES users (id),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  CHECK ((state = 'has_owner') = (owner_id IS NOT NULL))
);`,
	},
	{
		Name: "create_table_ownership_requests",
		SQL: `CREATE TABLE IF NOT EXISTS ownership_requests (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  animal_id  UUID        NOT NULL REFERENCES animals (id),
  user_id    UUID        NOT NULL REFERENCES users (id),
  status     TEXT        NOT NULL DEFAULT 'pending',
  message    TEXT        NOT NULL DEFAULT '',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_fosterings",
		SQL: `CREATE TABLE IF NOT EXISTS fosterings (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  animal_id  UUID        NOT NULL REFERENCES animals (id),
  user_id    UUID        NOT NULL REFERENCES users (id),
  status     TEXT        NOT NULL DEFAULT 'active',
  started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  ended_at   TIMESTAMPTZ NULL
);`,
	},
	{
		Name: "create_table_activity_slots",
		SQL: `CREATE TABLE IF NOT EXISTS activity_slots (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  shelter_id UUID        NOT NULL REFERENCES shelters (id),
  starts_at  TIMESTAMPTZ NOT NULL,
  ends_at    TIMESTAMPTZ NOT NULL,
  status     TEXT        NOT NULL DEFAULT 'available',
  CHECK (starts_at < ends_at)
);`,
	},
	{
		Name: "create_table_activities",
		SQL: `CREATE TABLE IF NOT EXISTS activities (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  animal_id  UUID        NOT NULL REFERENCES animals (id),
  user_id    UUID        NOT NULL REFERENCES users (id),
  slot_id    UUID        NOT NULL REFERENCES activity_slots (id),
  kind       TEXT        NOT NULL,
  status     TEXT        NOT NULL DEFAULT 'active',
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_favorites",
		SQL: `CREATE TABLE IF NOT EXISTS favorites (
  user_id    UUID        NOT NULL REFERENCES users (id),
  animal_id  UUID        NOT NULL REFERENCES animals (id),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  PRIMARY KEY (user_id, animal_id)
);`,
	},
	{
		Name: "create_table_images",
		SQL: `CREATE TABLE IF NOT EXISTS images (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  animal_id    UUID        NOT NULL REFERENCES animals (id),
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_animals_state",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_animals_state ON animals (state);`,
	},
	{
		Name: "create_index_animals_shelter",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_animals_shelter ON animals (shelter_id);`,
	},
	{
		Name: "create_index_ownership_requests_animal",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_ownership_requests_animal ON ownership_requests (animal_id);`,
	},
	{
		Name: "create_index_activities_animal",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_activities_animal ON activities (animal_id);`,
	},
	{
		Name: "create_index_activity_slots_shelter",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_activity_slots_shelter ON activity_slots (shelter_id, starts_at);`,
	},
}

// EnsureMigrated checks if the 'animals' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.animals') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}

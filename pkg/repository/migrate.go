package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/umputun/lunch/pkg/domain"
)

// legacy tables written by the desktop app before the schema rename
const (
	legacyRestaurants = "lunch_list"   // restaurants TEXT PRIMARY KEY, option TEXT
	legacySelections  = "recent_lunch" // restaurants TEXT PRIMARY KEY, date TEXT
)

// runMigrations moves data from legacy tables into the current schema and drops them.
// Safe to call on every start, does nothing if legacy tables are absent.
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	hasRestaurants, err := tableExists(ctx, db, legacyRestaurants)
	if err != nil {
		return err
	}
	hasSelections, err := tableExists(ctx, db, legacySelections)
	if err != nil {
		return err
	}
	if !hasRestaurants && !hasSelections {
		return nil
	}

	return inTransaction(ctx, db, func(tx *sqlx.Tx) error {
		if hasRestaurants {
			query := `
				INSERT OR IGNORE INTO restaurants (name, category)
				SELECT TRIM(restaurants),
					CASE LOWER(TRIM(option))
						WHEN 'cheap' THEN 'Cheap'
						WHEN 'normal' THEN 'Normal'
						ELSE COALESCE(option, '')
					END
				FROM lunch_list
				WHERE restaurants IS NOT NULL AND TRIM(restaurants) != ''
			`
			res, err := tx.ExecContext(ctx, query)
			if err != nil {
				return fmt.Errorf("migrate %s: %w", legacyRestaurants, err)
			}
			if n, err := res.RowsAffected(); err == nil {
				log.Printf("[INFO] migrated %d restaurants from %s", n, legacyRestaurants)
			}
			if _, err := tx.ExecContext(ctx, "DROP TABLE lunch_list"); err != nil {
				return fmt.Errorf("drop %s: %w", legacyRestaurants, err)
			}
		}

		if hasSelections {
			if err := migrateSelections(ctx, tx); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, "DROP TABLE recent_lunch"); err != nil {
				return fmt.Errorf("drop %s: %w", legacySelections, err)
			}
		}
		return nil
	})
}

// migrateSelections copies legacy history with parseable dates and keeps the most recent entries
func migrateSelections(ctx context.Context, tx *sqlx.Tx) error {
	var legacy []struct {
		Name string `db:"restaurants"`
		Date string `db:"date"`
	}
	query := "SELECT restaurants, COALESCE(date, '') AS date FROM recent_lunch WHERE restaurants IS NOT NULL ORDER BY date"
	if err := tx.SelectContext(ctx, &legacy, query); err != nil {
		return fmt.Errorf("read %s: %w", legacySelections, err)
	}

	for _, l := range legacy {
		ts, err := time.Parse(time.RFC3339Nano, l.Date)
		if err != nil {
			log.Printf("[WARN] skip legacy selection %q, bad date %q", l.Name, l.Date)
			continue
		}
		insert := "INSERT INTO recent_selections (id, name, selected_at) VALUES (?, ?, ?)"
		if _, err := tx.ExecContext(ctx, insert, uuid.NewString(), l.Name, formatTS(ts)); err != nil {
			return fmt.Errorf("migrate selection %q: %w", l.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, pruneSelectionsSQL, domain.HistoryLimit); err != nil {
		return fmt.Errorf("prune migrated selections: %w", err)
	}
	return nil
}

func tableExists(ctx context.Context, db *sqlx.DB, name string) (bool, error) {
	var count int
	err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", name, err)
	}
	return count > 0, nil
}

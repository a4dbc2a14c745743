package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/lunch/pkg/domain"
)

// restaurantRow is a row of restaurants table
type restaurantRow struct {
	Name     string `db:"name"`
	Category string `db:"category"`
}

// RestaurantRepository handles restaurant-related database operations
type RestaurantRepository struct {
	db *sqlx.DB
}

// NewRestaurantRepository creates a new restaurant repository
func NewRestaurantRepository(db *sqlx.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// GetRestaurants returns all restaurants ordered by name
func (r *RestaurantRepository) GetRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	var rows []restaurantRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT name, category FROM restaurants ORDER BY name"); err != nil {
		return nil, fmt.Errorf("get restaurants: %w: %w", domain.ErrStorageRead, err)
	}
	return toDomainRestaurants(rows), nil
}

// GetRestaurantsByCategory returns restaurants with case-insensitive category match, ordered by name
func (r *RestaurantRepository) GetRestaurantsByCategory(ctx context.Context, category string) ([]domain.Restaurant, error) {
	query := "SELECT name, category FROM restaurants WHERE LOWER(category) = LOWER(?) ORDER BY name"
	var rows []restaurantRow
	if err := r.db.SelectContext(ctx, &rows, query, strings.TrimSpace(category)); err != nil {
		return nil, fmt.Errorf("get restaurants by category: %w: %w", domain.ErrStorageRead, err)
	}
	return toDomainRestaurants(rows), nil
}

// CountRestaurants returns the number of stored restaurants
func (r *RestaurantRepository) CountRestaurants(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM restaurants"); err != nil {
		return 0, fmt.Errorf("count restaurants: %w: %w", domain.ErrStorageRead, err)
	}
	return count, nil
}

// CreateRestaurant inserts a new restaurant, returns domain.ErrDuplicateName if the name is taken
func (r *RestaurantRepository) CreateRestaurant(ctx context.Context, rest domain.Restaurant) error {
	row := restaurantRow{Name: rest.Name, Category: rest.Category.String()}
	return retryWrite(ctx, "create restaurant", func() error {
		_, err := r.db.NamedExecContext(ctx, "INSERT INTO restaurants (name, category) VALUES (:name, :category)", row)
		if isUniqueError(err) {
			return fmt.Errorf("%w: %q", domain.ErrDuplicateName, rest.Name)
		}
		return err
	})
}

// DeleteRestaurant removes a restaurant by exact name. Missing name is not an error.
func (r *RestaurantRepository) DeleteRestaurant(ctx context.Context, name string) error {
	return retryWrite(ctx, "delete restaurant", func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM restaurants WHERE name = ?", name)
		return err
	})
}

// SeedRestaurants loads name,category CSV records into an empty restaurants table.
// Does nothing if any restaurant exists. Returns the number of inserted rows.
func (r *RestaurantRepository) SeedRestaurants(ctx context.Context, src io.Reader) (int, error) {
	records, err := readSeed(src)
	if err != nil {
		return 0, err
	}

	inserted := 0
	err = retryWrite(ctx, "seed restaurants", func() error {
		inserted = 0
		return inTransaction(ctx, r.db, func(tx *sqlx.Tx) error {
			var count int
			if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM restaurants"); err != nil {
				return fmt.Errorf("count restaurants: %w", err)
			}
			if count > 0 {
				return nil
			}
			for _, rec := range records {
				res, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO restaurants (name, category) VALUES (?, ?)",
					rec.Name, rec.Category.String())
				if err != nil {
					return fmt.Errorf("insert %q: %w", rec.Name, err)
				}
				if n, err := res.RowsAffected(); err == nil {
					inserted += int(n)
				}
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// readSeed parses seed CSV, skipping the header, blank names and unknown categories
func readSeed(src io.Reader) ([]domain.Restaurant, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var res []domain.Restaurant
	for line := 1; ; line++ {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read seed line %d: %w", line, err)
		}
		if len(rec) < 2 {
			continue
		}
		name := strings.TrimSpace(rec[0])
		if name == "" || (line == 1 && strings.EqualFold(name, "name")) {
			continue
		}
		category, err := domain.ParseCategory(rec[1])
		if err != nil {
			log.Printf("[WARN] skip seed line %d: %v", line, err)
			continue
		}
		res = append(res, domain.Restaurant{Name: name, Category: category})
	}
	return res, nil
}

// toDomainRestaurants converts rows to domain restaurants.
// Category values not matching a known category are kept as stored.
func toDomainRestaurants(rows []restaurantRow) []domain.Restaurant {
	res := make([]domain.Restaurant, 0, len(rows))
	for _, row := range rows {
		category, err := domain.ParseCategory(row.Category)
		if err != nil {
			category = domain.Category(row.Category)
		}
		res = append(res, domain.Restaurant{Name: row.Name, Category: category})
	}
	return res
}

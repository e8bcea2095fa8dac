// Package pgstore keeps the catalog, orders and user profiles in PostgreSQL
// through GORM. Live order queries are served by an in-process change hub, so
// every writer of the orders table must go through this Store.
package pgstore

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/junaidrashid-git/kula-api/models"
	"github.com/junaidrashid-git/kula-api/store"
)

type Store struct {
	db  *gorm.DB
	hub *store.Hub
}

var _ store.Store = (*Store)(nil)

// Open connects to dsn and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	s := New(db)
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func New(db *gorm.DB) *Store {
	return &Store{db: db, hub: store.NewHub()}
}

func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(
		&models.Food{},
		&models.OrderLine{},
		&models.UserProfile{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) ListFoods(ctx context.Context) ([]models.Food, error) {
	var foods []models.Food
	if err := s.db.WithContext(ctx).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	return foods, nil
}

func (s *Store) GetFood(ctx context.Context, id string) (models.Food, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).First(&food, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Food{}, store.ErrNotFound
		}
		return models.Food{}, fmt.Errorf("get food %s: %w", id, err)
	}
	return food, nil
}

func (s *Store) CreateOrder(ctx context.Context, line models.OrderLine) (models.OrderLine, error) {
	line.ID = uuid.NewString()
	line.CreatedAt = time.Now().UTC()
	if err := s.db.WithContext(ctx).Create(&line).Error; err != nil {
		return models.OrderLine{}, err
	}
	s.hub.Publish(line.OwnerID)
	return line, nil
}

func (s *Store) WatchOrders(ctx context.Context, ownerID string) (store.OrderWatch, error) {
	return s.hub.Watch(ctx, ownerID, func(ctx context.Context) ([]models.OrderLine, error) {
		var lines []models.OrderLine
		if err := ordersOf(s.db.WithContext(ctx), ownerID).Find(&lines).Error; err != nil {
			return nil, fmt.Errorf("watch orders: %w", err)
		}
		return lines, nil
	}), nil
}

func ordersOf(db *gorm.DB, ownerID string) *gorm.DB {
	return db.Model(&models.OrderLine{}).Where("owner_id = ?", ownerID)
}

func foodNamed(db *gorm.DB, name string) *gorm.DB {
	return db.Where("name = ?", name)
}

func (s *Store) PutProfile(ctx context.Context, p models.UserProfile) error {
	return s.db.WithContext(ctx).Save(&p).Error
}

func (s *Store) GetProfile(ctx context.Context, id string) (models.UserProfile, error) {
	var p models.UserProfile
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserProfile{}, store.ErrNotFound
		}
		return models.UserProfile{}, fmt.Errorf("get user %s: %w", id, err)
	}
	return p, nil
}

// SeedFoods inserts foods that are not present yet. Used by the server's
// -seed flag on fresh databases.
func (s *Store) SeedFoods(ctx context.Context, foods []models.Food) error {
	for _, f := range foods {
		if f.ID == "" {
			f.ID = uuid.NewString()
		}
		res := foodNamed(s.db.WithContext(ctx), f.Name).FirstOrCreate(&f)
		if res.Error != nil {
			return fmt.Errorf("seed %s: %w", f.Name, res.Error)
		}
		if res.RowsAffected > 0 {
			log.Printf("🍽️ Seeded food: %s", f.Name)
		}
	}
	return nil
}

package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrNotFound    = errors.New("component not found")
	ErrUnknownSlot = errors.New("unknown component slot")
)

// offeringNS namespaces the deterministic offering ids produced on import.
var offeringNS = uuid.MustParse("6f1c5a52-8d0e-4c1f-9a53-0b7e2f0e9c11")

// OfferingID derives a stable id for a retailer's listing of a component, so
// re-importing the same feed updates rows instead of adding new ones.
func OfferingID(componentID, retailer string) string {
	return uuid.NewSHA1(offeringNS, []byte(componentID+"|"+retailer)).String()
}

type Store interface {
	ListBySlot(ctx context.Context, slot string) ([]Component, error)
	GetMany(ctx context.Context, ids []string) ([]Component, error)
	Upsert(ctx context.Context, items []Component) error
}

type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func preloadOfferings(db *gorm.DB) *gorm.DB {
	return db.Order("price ASC, id ASC")
}

func (r *GormStore) ListBySlot(ctx context.Context, slot string) ([]Component, error) {
	var items []Component
	err := r.db.WithContext(ctx).
		Where("slot = ?", slot).
		Preload("Offerings", preloadOfferings).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *GormStore) GetMany(ctx context.Context, ids []string) ([]Component, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []Component
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Preload("Offerings", preloadOfferings).
		Find(&items).Error
	return items, err
}

// Upsert writes components and their offerings. Offerings of an imported
// component that are missing from the import are marked disabled rather than
// deleted, since saved builds may still point at them.
func (r *GormStore) Upsert(ctx context.Context, items []Component) error {
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, c := range items {
			offerings := c.Offerings
			c.Offerings = nil
			if c.CreatedAt.IsZero() {
				c.CreatedAt = now
			}
			c.UpdatedAt = now

			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"slot", "name", "image", "attributes", "updated_at"}),
			}).Create(&c).Error; err != nil {
				return err
			}

			keep := make([]string, 0, len(offerings))
			for i := range offerings {
				o := &offerings[i]
				o.ComponentID = c.ID
				if o.ID == "" {
					o.ID = OfferingID(c.ID, o.RetailerName)
				}
				o.UpdatedAt = now
				keep = append(keep, o.ID)
			}
			if len(offerings) > 0 {
				if err := tx.Clauses(clause.OnConflict{
					Columns:   []clause.Column{{Name: "id"}},
					DoUpdates: clause.AssignmentColumns([]string{"retailer_name", "price", "url", "disabled", "updated_at"}),
				}).Create(&offerings).Error; err != nil {
					return err
				}
			}

			q := tx.Model(&Offering{}).Where("component_id = ?", c.ID)
			if len(keep) > 0 {
				q = q.Where("id NOT IN ?", keep)
			}
			if err := q.Updates(map[string]any{"disabled": true, "updated_at": now}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

package builds

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type buildRow struct {
	ID        string    `gorm:"primaryKey;type:varchar(32)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (buildRow) TableName() string { return "builds" }

type slotRow struct {
	BuildID     string    `gorm:"primaryKey;type:varchar(32)"`
	Slot        string    `gorm:"primaryKey;type:varchar(32)"`
	ComponentID string    `gorm:"type:varchar(96);not null"`
	OfferingID  string    `gorm:"type:char(36);not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (slotRow) TableName() string { return "build_slots" }

type Store interface {
	Get(ctx context.Context, id string) (Record, error)
	Save(ctx context.Context, rec Record) error
	// Create stores rec under a freshly generated id and returns it.
	Create(ctx context.Context, rec Record) (Record, error)
}

const createAttempts = 3

// NewID returns a short id suitable for share links.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// NormalizeID is the form ids are stored and looked up in.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

type GormStore struct{ db *gorm.DB }

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{db: db} }

func (r *GormStore) Get(ctx context.Context, id string) (Record, error) {
	id = NormalizeID(id)
	if id == "" {
		return Record{}, ErrNotFound
	}

	var b buildRow
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}

	var rows []slotRow
	if err := r.db.WithContext(ctx).Find(&rows, "build_id = ?", b.ID).Error; err != nil {
		return Record{}, err
	}

	rec := Record{ID: b.ID, Slots: make(map[string]Selection, len(rows))}
	for _, row := range rows {
		rec.Slots[row.Slot] = Selection{ComponentID: row.ComponentID, OfferingID: row.OfferingID}
	}
	return rec, nil
}

func (r *GormStore) Save(ctx context.Context, rec Record) error {
	rec.ID = NormalizeID(rec.ID)
	if rec.ID == "" {
		return ErrNotFound
	}
	now := time.Now()
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		b := buildRow{ID: rec.ID, CreatedAt: now, UpdatedAt: now}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).Create(&b).Error; err != nil {
			return err
		}
		return replaceSlots(tx, rec, now)
	})
}

func (r *GormStore) Create(ctx context.Context, rec Record) (Record, error) {
	now := time.Now()
	var lastErr error
	for i := 0; i < createAttempts; i++ {
		rec.ID = NewID()
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&buildRow{ID: rec.ID, CreatedAt: now, UpdatedAt: now}).Error; err != nil {
				return err
			}
			return replaceSlots(tx, rec, now)
		})
		if err == nil {
			return rec, nil
		}
		if !IsDuplicateKey(err) {
			return Record{}, err
		}
		lastErr = err
	}
	return Record{}, lastErr
}

func replaceSlots(tx *gorm.DB, rec Record, now time.Time) error {
	if err := tx.Where("build_id = ?", rec.ID).Delete(&slotRow{}).Error; err != nil {
		return err
	}
	if len(rec.Slots) == 0 {
		return nil
	}
	rows := make([]slotRow, 0, len(rec.Slots))
	for slot, sel := range rec.Slots {
		rows = append(rows, slotRow{
			BuildID:     rec.ID,
			Slot:        slot,
			ComponentID: sel.ComponentID,
			OfferingID:  sel.OfferingID,
			UpdatedAt:   now,
		})
	}
	return tx.Create(&rows).Error
}

func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return false
}

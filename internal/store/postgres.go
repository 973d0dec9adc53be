package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/aaronzipp/find-the-imposter/internal/game"
	"github.com/aaronzipp/find-the-imposter/internal/models"
)

// RoomSnapshot is the row holding one room's serialized aggregate
type RoomSnapshot struct {
	Code      string `gorm:"primaryKey;size:6"`
	Payload   string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// PostgresPersister stores snapshots in the room_snapshots table
type PostgresPersister struct {
	db *gorm.DB
}

// NewPostgresPersister opens dsn and migrates the snapshot table
func NewPostgresPersister(dsn string) (*PostgresPersister, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := db.AutoMigrate(&RoomSnapshot{}); err != nil {
		return nil, fmt.Errorf("migrating room_snapshots: %w", err)
	}
	return &PostgresPersister{db: db}, nil
}

// Save upserts the room's row
func (p *PostgresPersister) Save(ctx context.Context, snap models.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	row := RoomSnapshot{
		Code:      game.NormalizeCode(snap.Room.Code),
		Payload:   string(data),
		UpdatedAt: time.Now().UTC(),
	}
	err = p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("saving room %s: %w", row.Code, err)
	}
	return nil
}

// Delete removes the room's row
func (p *PostgresPersister) Delete(ctx context.Context, code string) error {
	err := p.db.WithContext(ctx).Delete(&RoomSnapshot{}, "code = ?", game.NormalizeCode(code)).Error
	if err != nil {
		return fmt.Errorf("deleting room %s: %w", code, err)
	}
	return nil
}

// LoadAll reads every stored snapshot
func (p *PostgresPersister) LoadAll(ctx context.Context) ([]models.Snapshot, error) {
	var rows []RoomSnapshot
	if err := p.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading rooms: %w", err)
	}
	snaps := make([]models.Snapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := decodeSnapshot([]byte(row.Payload))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", row.Code, err)
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

// Close releases the underlying connection pool
func (p *PostgresPersister) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

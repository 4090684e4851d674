package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/campus"
)

// LocationModel is the GORM model for the locations table. Position
// preserves seed order; keyword matching depends on it for stable
// tie-breaking.
type LocationModel struct {
	ID          uint           `gorm:"primaryKey;autoIncrement"`
	Position    int            `gorm:"uniqueIndex;not null"`
	Name        string         `gorm:"uniqueIndex;not null;size:120"`
	Lat         float64        `gorm:"not null"`
	Lng         float64        `gorm:"not null"`
	Category    string         `gorm:"index;size:60"`
	Description string         `gorm:"size:1000"`
	Landmark    string         `gorm:"size:300"`
	Keywords    pq.StringArray `gorm:"type:text[]"`
	Icon        string         `gorm:"size:60"`
	CreatedAt   time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (LocationModel) TableName() string {
	return "locations"
}

// GormLocationRepository is the GORM-based implementation of
// campus.LocationRepository.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// FindAll retrieves every location ordered by seed position.
func (r *GormLocationRepository) FindAll(ctx context.Context) ([]campus.Location, error) {
	var models []LocationModel
	if err := r.db.WithContext(ctx).Order("position ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	locations := make([]campus.Location, len(models))
	for i, m := range models {
		locations[i] = toDomainLocation(&m)
	}
	return locations, nil
}

// Count returns the number of stored locations.
func (r *GormLocationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&LocationModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count locations: %w", err)
	}
	return count, nil
}

// campusDataFile is the on-disk shape of the seed file.
type campusDataFile struct {
	Campus    string            `json:"campus"`
	Locations []campus.Location `json:"locations"`
}

// SeedFromFile imports the campus seed file into the locations table.
// Intended for first boot against an empty table.
func (r *GormLocationRepository) SeedFromFile(ctx context.Context, path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var data campusDataFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return 0, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(data.Locations) == 0 {
		return 0, fmt.Errorf("seed file %s contains no locations", path)
	}

	now := time.Now().UTC()
	models := make([]LocationModel, len(data.Locations))
	for i, loc := range data.Locations {
		models[i] = LocationModel{
			Position:    i,
			Name:        loc.Name,
			Lat:         loc.Lat,
			Lng:         loc.Lng,
			Category:    loc.Category,
			Description: loc.Description,
			Landmark:    loc.Landmark,
			Keywords:    pq.StringArray(loc.Keywords),
			Icon:        loc.Icon,
			CreatedAt:   now,
		}
	}

	if err := r.db.WithContext(ctx).CreateInBatches(models, 100).Error; err != nil {
		return 0, fmt.Errorf("failed to insert locations: %w", err)
	}
	return len(models), nil
}

func toDomainLocation(m *LocationModel) campus.Location {
	return campus.Location{
		Name:        m.Name,
		Lat:         m.Lat,
		Lng:         m.Lng,
		Category:    m.Category,
		Description: m.Description,
		Landmark:    m.Landmark,
		Keywords:    []string(m.Keywords),
		Icon:        m.Icon,
	}
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SHARMA1525/v0-campus-map-integration/internal/domain/navigation"
)

// RouteRequestModel is the GORM model for the route_requests table.
type RouteRequestModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	FromName  string     `gorm:"not null;size:120"`
	ToName    string     `gorm:"not null;size:120"`
	Persona   string     `gorm:"size:30;index"`
	DistanceM float64    `gorm:"not null"`
	Found     bool       `gorm:"not null"`
	CreatedAt time.Time  `gorm:"not null;index"`
}

// TableName returns the table name for the GORM model.
func (RouteRequestModel) TableName() string {
	return "route_requests"
}

// GormHistoryRepository is the GORM-based implementation of
// navigation.HistoryRepository.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GormHistoryRepository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Save appends one route-request record.
func (r *GormHistoryRepository) Save(ctx context.Context, req navigation.RouteRequest) error {
	model := RouteRequestModel{
		ID:        req.ID,
		UserID:    req.UserID,
		FromName:  req.FromName,
		ToName:    req.ToName,
		Persona:   req.Persona,
		DistanceM: req.DistanceM,
		Found:     req.Found,
		CreatedAt: req.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save route request: %w", err)
	}
	return nil
}

// FindByUserID retrieves a user's route requests, newest first, with
// pagination.
func (r *GormHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID, page, limit int) ([]navigation.RouteRequest, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&RouteRequestModel{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count route requests: %w", err)
	}

	var models []RouteRequestModel
	offset := (page - 1) * limit
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find route requests: %w", err)
	}

	requests := make([]navigation.RouteRequest, len(models))
	for i, m := range models {
		requests[i] = navigation.RouteRequest{
			ID:        m.ID,
			UserID:    m.UserID,
			FromName:  m.FromName,
			ToName:    m.ToName,
			Persona:   m.Persona,
			DistanceM: m.DistanceM,
			Found:     m.Found,
			CreatedAt: m.CreatedAt,
		}
	}
	return requests, total, nil
}

// CountByPersona returns request counts grouped by persona.
func (r *GormHistoryRepository) CountByPersona(ctx context.Context) (map[string]int64, error) {
	type personaCount struct {
		Persona string
		Count   int64
	}
	var results []personaCount
	if err := r.db.WithContext(ctx).Model(&RouteRequestModel{}).
		Select("persona, count(*) as count").
		Group("persona").
		Find(&results).Error; err != nil {
		return nil, fmt.Errorf("failed to count by persona: %w", err)
	}

	counts := make(map[string]int64)
	for _, pc := range results {
		counts[pc.Persona] = pc.Count
	}
	return counts, nil
}

// CountAll returns the total number of recorded requests.
func (r *GormHistoryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RouteRequestModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count route requests: %w", err)
	}
	return count, nil
}

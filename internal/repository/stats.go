// Package repository persists aggregate emotion detection counts.
package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/easeaico/wellness-companion/internal/emotion"
	"github.com/easeaico/wellness-companion/internal/types"
)

// emotionDetectionModel maps to the emotion_detections table.
// Only counters are kept; message text is never stored.
type emotionDetectionModel struct {
	Tag        string `gorm:"primaryKey;size:32"`
	Hits       int64  `gorm:"not null;default:0"`
	LastSeenAt time.Time
}

func (emotionDetectionModel) TableName() string {
	return "emotion_detections"
}

// StatsRepo accesses detection counters.
type StatsRepo struct {
	db      *gorm.DB
	nowFunc func() time.Time
}

// NewStatsRepo returns a StatsRepo.
func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db: db, nowFunc: time.Now}
}

// Increment adds one hit for every tag.
func (r *StatsRepo) Increment(ctx context.Context, tags []emotion.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	now := r.nowFunc()
	records := make([]emotionDetectionModel, 0, len(tags))
	for _, tag := range tags {
		records = append(records, emotionDetectionModel{Tag: string(tag), Hits: 1, LastSeenAt: now})
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "tag"}},
			DoUpdates: clause.Assignments(map[string]any{
				"hits":         gorm.Expr("emotion_detections.hits + 1"),
				"last_seen_at": now,
			}),
		}).
		Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to increment detections: %w", err)
	}
	return nil
}

// List returns all counters in keyword table order. Unknown tags sort last.
func (r *StatsRepo) List(ctx context.Context) ([]types.DetectionStat, error) {
	var records []emotionDetectionModel
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to query detections: %w", err)
	}

	results := make([]types.DetectionStat, 0, len(records))
	for _, record := range records {
		results = append(results, types.DetectionStat{
			Tag:        record.Tag,
			Hits:       record.Hits,
			LastSeenAt: record.LastSeenAt,
		})
	}
	sortStats(results)
	return results, nil
}

func sortStats(stats []types.DetectionStat) {
	rank := func(tag string) int {
		if i := emotion.Order(emotion.Tag(tag)); i >= 0 {
			return i
		}
		return len(emotion.Tags())
	}
	sort.SliceStable(stats, func(i, j int) bool {
		ri, rj := rank(stats[i].Tag), rank(stats[j].Tag)
		if ri != rj {
			return ri < rj
		}
		return stats[i].Tag < stats[j].Tag
	})
}

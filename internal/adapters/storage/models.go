package storage

import (
	"time"

	"usagebar/internal/domain"
)

// UsageSnapshotModel is the GORM model for the usage_snapshots table
type UsageSnapshotModel struct {
	BurnRatePerMinute *float64  `gorm:"default:null"`
	CapturedAt        time.Time `gorm:"not null;index:idx_captured_at"`
	Cost              *float64  `gorm:"default:null"`
	CreatedAt         time.Time
	ID                uint   `gorm:"primaryKey;autoIncrement"`
	ModelName         string `gorm:"not null;default:''"`
	Plan              string `gorm:"not null;default:''"`
	SessionProgress   *float64 `gorm:"default:null"`
	TokenCount        int64    `gorm:"not null;default:0"`
}

// TableName specifies the table name for GORM
func (UsageSnapshotModel) TableName() string { return "usage_snapshots" }

func snapshotModelToDomain(m UsageSnapshotModel) domain.UsageSnapshot {
	return domain.UsageSnapshot{
		BurnRatePerMinute: m.BurnRatePerMinute,
		CapturedAt:        m.CapturedAt,
		Cost:              m.Cost,
		ID:                m.ID,
		ModelName:         m.ModelName,
		Plan:              domain.Plan(m.Plan),
		SessionProgress:   m.SessionProgress,
		TokenCount:        m.TokenCount,
	}
}

func domainToSnapshotModel(s domain.UsageSnapshot) UsageSnapshotModel {
	return UsageSnapshotModel{
		BurnRatePerMinute: s.BurnRatePerMinute,
		CapturedAt:        s.CapturedAt.UTC(),
		Cost:              s.Cost,
		ID:                s.ID,
		ModelName:         s.ModelName,
		Plan:              string(s.Plan),
		SessionProgress:   s.SessionProgress,
		TokenCount:        s.TokenCount,
	}
}

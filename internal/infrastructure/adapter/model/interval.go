package model

import (
	"time"
)

// Interval represents the database model for named time deltas
type Interval struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Name      string    `gorm:"uniqueIndex:idx_intervals_name;not null;size:128"`
	Ticks     int64     `gorm:"not null"` // Total microseconds
	CreatedAt time.Time `gorm:"not null;index:idx_intervals_created_at"`
}

// TableName specifies the table name for Interval
func (Interval) TableName() string {
	return "intervals"
}

package entities

import "time"

// KVRecord backs the key-value store on sqlite. One row per key, value replaced whole.
type KVRecord struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

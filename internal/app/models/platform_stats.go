package models

import "time"

// PlatformStats is the per-deployment aggregate, stored under a single
// well-known _id and upserted idempotently on first credit. Counters only
// ever go up, and at most once per transaction reference.
type PlatformStats struct {
	ID                string    `bson:"_id" json:"-"`
	TotalPlatformCut  int64     `bson:"totalPlatformCut" json:"total_platform_cut"`
	TotalTransactions int64     `bson:"totalTransactions" json:"total_transactions"`
	UpdatedAt         time.Time `bson:"updatedAt" json:"updated_at"`
}

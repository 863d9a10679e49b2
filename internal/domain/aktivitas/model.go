// Package aktivitas holds the append-only activity log. Every successful
// mutation elsewhere in the API records an entry here through the Recorder
// hook; the log itself exposes no update or delete operations.
package aktivitas

import (
	"context"
	"time"
)

type Aktivitas struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	PasienID   *int64    `json:"pasienId"`
	Aktivitas  string    `json:"aktivitas"`
	Keterangan string    `json:"keterangan"`
	Tanggal    time.Time `json:"tanggal"`
	Status     string    `json:"status"`
}

// Entry is what a domain service hands the Recorder after a mutation.
type Entry struct {
	UserID     int64
	PasienID   *int64
	Aktivitas  string
	Keterangan string
	Status     string
}

// Recorder is the post-mutation audit hook injected into every domain
// service. Implementations must never fail the calling operation.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Package store persists extracted records.
package store

import (
	"context"

	"github.com/DanCas03/IA-Proyecto-Final/pkg/etl/models"
)

// Store is the destination for extracted records. The pipeline writes
// once per run: an optional Clear followed by a single bulk Insert.
type Store interface {
	// Clear removes all persisted records and returns how many were
	// deleted.
	Clear(ctx context.Context) (int64, error)
	// Insert bulk-writes records.
	Insert(ctx context.Context, records []models.Record) error
	// CountByCategory returns persisted record counts keyed by
	// canonical category.
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

// Memory is an in-process Store for tests and dry runs.
type Memory struct {
	Records []models.Record
}

func (m *Memory) Clear(ctx context.Context) (int64, error) {
	n := int64(len(m.Records))
	m.Records = nil
	return n, nil
}

func (m *Memory) Insert(ctx context.Context, records []models.Record) error {
	m.Records = append(m.Records, records...)
	return nil
}

func (m *Memory) CountByCategory(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, r := range m.Records {
		counts[r.Categoria]++
	}
	return counts, nil
}

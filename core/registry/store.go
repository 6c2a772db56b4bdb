package registry

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// LoadFromDB merges every persisted registry record into the registry and
// returns the number of records loaded. The database is an optional source;
// callers that run without one simply never call this.
func (r *Registry) LoadFromDB(ctx context.Context, db *gorm.DB) (int, error) {
	var records []Record
	if err := db.WithContext(ctx).Find(&records).Error; err != nil {
		return 0, fmt.Errorf("failed to load registry records: %w", err)
	}

	for _, rec := range records {
		r.Register(Kind(rec.Kind), rec.Name, rec.ObjectKey)
	}
	return len(records), nil
}

package registry

// Record is the persisted form of a registry entry.
type Record struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Kind      string `gorm:"size:16;uniqueIndex:idx_registry_kind_name" json:"kind"`
	Name      string `gorm:"size:128;uniqueIndex:idx_registry_kind_name" json:"name"`
	ObjectKey string `gorm:"size:512" json:"object_key"`
}

// TableName overrides the gorm default.
func (Record) TableName() string {
	return "registry_entries"
}

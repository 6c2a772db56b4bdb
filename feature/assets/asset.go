package assets

import "time"

// Asset is one loaded asset, cached by the loader for the process lifetime.
type Asset struct {
	// Key is the object key inside the bucket.
	Key string `json:"key"`
	// ContentType is derived from the key's file extension.
	ContentType string `json:"content_type"`
	// Size is the body size in bytes.
	Size int64 `json:"size"`
	// LoadedAt is when the asset was fetched from storage.
	LoadedAt time.Time `json:"loaded_at"`
	// Data is the asset body.
	Data []byte `json:"-"`
}

package assets

import (
	"context"
	"fmt"

	"asset-loader/core/loader"
	"asset-loader/core/registry"
	"asset-loader/core/storage"
	"asset-loader/core/timing"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service loads assets on demand through the shared loader and resolves
// symbolic names through the registry.
type Service struct {
	loader   *loader.Loader
	registry *registry.Registry
	recorder *timing.Recorder
	client   storage.Client
	bucket   string
	logger   *zap.Logger
}

// StatsReport combines the loader cache state with the timing aggregates.
type StatsReport struct {
	Loader  loader.Stats                  `json:"loader"`
	Timings map[string]timing.Measurement `json:"timings"`
}

// VerifyReport lists registered mappings whose object is missing in storage.
type VerifyReport struct {
	Checked int              `json:"checked"`
	Missing []registry.Entry `json:"missing"`
}

// NewService creates a new assets service.
func NewService(ld *loader.Loader, reg *registry.Registry, recorder *timing.Recorder, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		loader:   ld,
		registry: reg,
		recorder: recorder,
		client:   client,
		bucket:   bucket,
		logger:   logger,
	}
}

// GetAsset loads the asset stored under the given object key.
func (s *Service) GetAsset(ctx context.Context, key string) (*Asset, error) {
	v, err := s.loader.Load(ctx, key)
	if err != nil {
		return nil, err
	}
	a, ok := v.(*Asset)
	if !ok {
		return nil, fmt.Errorf("resource %s is not an asset", key)
	}
	return a, nil
}

// GetView resolves a view name through the registry and loads its asset.
// An unregistered name fails synchronously with *registry.UnknownResourceError.
func (s *Service) GetView(ctx context.Context, name string) (*Asset, error) {
	return s.getNamed(ctx, registry.KindView, name)
}

// GetFeature resolves a feature name through the registry and loads its asset.
func (s *Service) GetFeature(ctx context.Context, name string) (*Asset, error) {
	return s.getNamed(ctx, registry.KindFeature, name)
}

func (s *Service) getNamed(ctx context.Context, kind registry.Kind, name string) (*Asset, error) {
	key, err := s.registry.Resolve(kind, name)
	if err != nil {
		return nil, err
	}
	return s.GetAsset(ctx, key)
}

// Stats reports the loader cache state and the per-label timing aggregates.
func (s *Service) Stats() StatsReport {
	return StatsReport{
		Loader:  s.loader.Stats(),
		Timings: s.recorder.Snapshot(),
	}
}

// ClearCache drops every cached asset; the next request loads from storage
// again.
func (s *Service) ClearCache() {
	s.loader.ClearCache()
}

// VerifyRegistered stats every registered object key in storage and reports
// the mappings whose object is missing. Storage errors other than a plain
// miss abort the verification.
func (s *Service) VerifyRegistered(ctx context.Context) (*VerifyReport, error) {
	report := &VerifyReport{Missing: []registry.Entry{}}

	for _, entry := range s.registry.Entries() {
		report.Checked++
		_, err := s.client.StatObject(ctx, s.bucket, entry.ObjectKey, minio.StatObjectOptions{})
		if err == nil {
			continue
		}
		if resp := minio.ToErrorResponse(err); resp.Code == "NoSuchKey" {
			report.Missing = append(report.Missing, entry)
			continue
		}
		return nil, fmt.Errorf("failed to stat object %s: %w", entry.ObjectKey, err)
	}
	return report, nil
}

package assets_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"asset-loader/core/loader"
	"asset-loader/core/registry"
	"asset-loader/core/storage/mocks"
	"asset-loader/core/timing"
	"asset-loader/feature/assets"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBucket = "assets"

func newTestService(client *mocks.Client, reg *registry.Registry) *assets.Service {
	logg := zap.NewNop()
	recorder := timing.NewRecorder(logg)
	ld := loader.New(assets.NewResolver(client, testBucket), logg, recorder, loader.Config{
		MaxAttempts:   3,
		BackoffMillis: 5,
	})
	return assets.NewService(ld, reg, recorder, client, testBucket, logg)
}

func body(s string) io.ReadCloser {
	return io.NopCloser(bytes.NewReader([]byte(s)))
}

func TestGetAsset_LoadsOnceAndCaches(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "views/catalog.bundle", mock.Anything).
		Return(body("catalog-bytes"), nil).Once()

	svc := newTestService(client, registry.New())

	first, err := svc.GetAsset(context.Background(), "views/catalog.bundle")
	require.NoError(t, err)
	assert.Equal(t, []byte("catalog-bytes"), first.Data)
	assert.Equal(t, int64(len("catalog-bytes")), first.Size)

	// Second request must come from the cache, not storage.
	second, err := svc.GetAsset(context.Background(), "views/catalog.bundle")
	require.NoError(t, err)
	assert.Same(t, first, second)

	client.AssertNumberOfCalls(t, "GetObject", 1)
}

func TestGetAsset_RetriesTransientFailures(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "flaky.bundle", mock.Anything).
		Return(nil, errors.New("connection reset")).Twice()
	client.On("GetObject", mock.Anything, testBucket, "flaky.bundle", mock.Anything).
		Return(body("ok"), nil).Once()

	svc := newTestService(client, registry.New())

	asset, err := svc.GetAsset(context.Background(), "flaky.bundle")
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), asset.Data)
	client.AssertNumberOfCalls(t, "GetObject", 3)
}

func TestGetAsset_ExhaustedRetries(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "broken.bundle", mock.Anything).
		Return(nil, errors.New("storage down"))

	svc := newTestService(client, registry.New())

	_, err := svc.GetAsset(context.Background(), "broken.bundle")
	require.Error(t, err)

	var loadErr *loader.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 3, loadErr.Attempts)
	client.AssertNumberOfCalls(t, "GetObject", 3)
}

func TestGetView_ResolvesThroughRegistry(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "views/catalog.bundle", mock.Anything).
		Return(body("catalog"), nil).Once()

	reg := registry.New()
	reg.Register(registry.KindView, "catalog", "views/catalog.bundle")
	svc := newTestService(client, reg)

	asset, err := svc.GetView(context.Background(), "catalog")
	require.NoError(t, err)
	assert.Equal(t, "views/catalog.bundle", asset.Key)
}

func TestGetView_UnknownName(t *testing.T) {
	client := new(mocks.Client)
	svc := newTestService(client, registry.New())

	_, err := svc.GetView(context.Background(), "missing-view")
	require.Error(t, err)

	var unknown *registry.UnknownResourceError
	assert.ErrorAs(t, err, &unknown)

	// The failure is synchronous; storage is never touched.
	client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClearCache_ReloadsFromStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "a.bundle", mock.Anything).
		Return(body("v1"), nil).Once()
	client.On("GetObject", mock.Anything, testBucket, "a.bundle", mock.Anything).
		Return(body("v2"), nil).Once()

	svc := newTestService(client, registry.New())

	first, err := svc.GetAsset(context.Background(), "a.bundle")
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), first.Data)

	svc.ClearCache()

	second, err := svc.GetAsset(context.Background(), "a.bundle")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), second.Data)
	client.AssertNumberOfCalls(t, "GetObject", 2)
}

func TestStats(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, testBucket, "a.bundle", mock.Anything).
		Return(body("a"), nil).Once()

	svc := newTestService(client, registry.New())
	_, err := svc.GetAsset(context.Background(), "a.bundle")
	require.NoError(t, err)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.Loader.CachedCount)
	assert.Equal(t, []string{"a.bundle"}, stats.Loader.CachedIDs)
	assert.Equal(t, 1, stats.Timings["load:a.bundle"].Count)
}

func TestVerifyRegistered(t *testing.T) {
	client := new(mocks.Client)
	client.On("StatObject", mock.Anything, testBucket, "views/catalog.bundle", mock.Anything).
		Return(minio.ObjectInfo{Key: "views/catalog.bundle"}, nil)
	client.On("StatObject", mock.Anything, testBucket, "features/gone.bundle", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", Message: "The specified key does not exist."})

	reg := registry.New()
	reg.Register(registry.KindView, "catalog", "views/catalog.bundle")
	reg.Register(registry.KindFeature, "gone", "features/gone.bundle")
	svc := newTestService(client, reg)

	report, err := svc.VerifyRegistered(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.Checked)
	require.Len(t, report.Missing, 1)
	assert.Equal(t, "features/gone.bundle", report.Missing[0].ObjectKey)
}

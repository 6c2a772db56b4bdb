// Package storage wraps the Minio/S3 client behind a narrow, read-only
// interface.
//
// The Client interface exposes exactly what the loader and verification paths
// need: fetching an object body (GetObject), checking presence cheaply
// (StatObject, BucketExists) and enumerating keys (ListObjects). Keeping the
// interface this small makes the testify mock in the mocks subpackage trivial
// to maintain.
//
// NewClient configures strict transport-level timeouts so a misbehaving
// storage endpoint fails a load attempt quickly instead of hanging it; the
// loader's retry/backoff takes it from there.
package storage

// Package assets serves lazily loaded assets out of object storage.
//
// Every asset request goes through the shared core/loader instance, so an
// asset is fetched from storage at most once per process lifetime (or until
// the cache is cleared), concurrent requests for the same key share one
// fetch, and transient storage failures are retried with backoff.
//
// # Endpoints
//
//   - GET  /assets/{key}        serve an asset by raw object key
//   - GET  /views/{name}        serve the asset backing a registered view
//   - GET  /features/{name}     serve the asset backing a registered feature
//   - GET  /assets/stats        loader cache state + timing aggregates
//   - POST /assets/cache/clear  drop every cached asset
//   - GET  /assets/verify       stat every registered key, report missing
//
// Symbolic names resolve through core/registry before any load is attempted;
// unknown names return 404 without touching storage.
package assets

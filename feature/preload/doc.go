// Package preload warms the asset cache before anyone asks.
//
// Three triggers exist, all best-effort: a failing key is logged and skipped,
// never propagated, and never blocks the rest of a batch.
//
//   - Critical batch: the keys in PRELOAD_CRITICAL are loaded with bounded
//     parallelism when the server starts (and by the 'warm' CLI command).
//   - Hints: POST /preload/hint/{name} signals that a client will likely need
//     a registered view or feature soon; the backing asset is warmed in the
//     background and the request returns 202 immediately.
//   - Idle warming: the keys in PRELOAD_IDLE are loaded one per tick, but only
//     while the activity tracker reports the server quiet for at least
//     PRELOAD_IDLE_AFTER_SECONDS. StartIdleWarmer returns a Subscription whose
//     Stop terminates the warmer deterministically during shutdown.
//
// Everything goes through the shared core/loader, so warmed assets land in the
// same cache that serves requests and concurrent demand is de-duplicated.
package preload

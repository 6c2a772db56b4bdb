// Package loader provides the memoizing resource loader at the heart of the
// application.
//
// A Loader wraps an injected Resolver (object storage in production, stubs in
// tests) and guarantees three things for every resource identifier:
//
//   - Caching: a successfully resolved value is kept for the process lifetime
//     and returned to every later caller without re-invoking the Resolver,
//     until ClearCache is called.
//   - De-duplication: concurrent callers for the same identifier share one
//     underlying attempt sequence and one outcome.
//   - Bounded retries: transient failures are retried with linear backoff
//     (the wait after failed attempt k is k times the configured base) up to
//     the attempt budget, after which a *LoadError carrying the last cause is
//     returned to every waiter.
//
// A terminally failed identifier is fully forgotten, so a later call starts a
// fresh attempt sequence.
//
// Every attempt is measured through core/timing under a "load:<identifier>"
// label.
package loader

// Package timing provides the duration-measurement collaborator used across
// the application.
//
// A Recorder aggregates observed durations per label (count, total, min, max)
// and debug-logs each observation through zap. The loader measures every load
// attempt under a "load:<identifier>" label; the stats endpoint exposes the
// aggregate snapshot alongside the cache state.
//
// # Usage
//
//	recorder := timing.NewRecorder(logger)
//	end := recorder.Start("load:views/catalog.bundle")
//	// ... do work ...
//	end()
//
// Snapshot() returns a copy and is safe to serve directly over HTTP.
package timing

package adapter

import "context"

// MetricsCache stores computed reports. Entries become stale as soon as any
// change is published, so callers read Version once per request and embed it
// in every key they Get or Set for that request.
type MetricsCache interface {
	// Version returns the current data version.
	Version(ctx context.Context) (int64, error)

	// Get decodes a cached value into dest and reports whether it was found.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stores value under key.
	Set(ctx context.Context, key string, value any) error
}

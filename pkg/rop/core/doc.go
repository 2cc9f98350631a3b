// Package core holds the shared machinery of the channel-lifted layer:
// the Locomotive worker loop with its cancellation handlers, channel
// in/out helpers, cancellation flush helpers and context-carried worker
// options. Higher-level packages (mass, lite) build on it.
package core

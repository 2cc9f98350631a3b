// Package mass lifts solo primitives into single-shot channel stages with
// cancellation routing. Every stage shares one generic lift loop; the
// per-operation wrappers (Validating, Switching, Mapping, Teeing,
// Observing, Trying) only pick the solo step to run. Finalizing collapses
// a result stream into concrete values, flushing queued items through the
// cancel handler when the process-remaining option allows.
//
// It is typically consumed through package lite, which adds worker fan-out.
package mass

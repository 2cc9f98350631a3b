// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without channels: once a step fails, every later step is skipped
// by the combinator contract, so step implementations never check "am I
// already failed" themselves.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: validation producing failure on invalid input
// - Switch: chain a Result-returning step, moving from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error/cancel maps)
// - Tee/FailOnError: side effects that may fail the track but never change the value
// - TeeIgnore/DoubleTee: observers that can never change the outcome
// - Try: fault boundary for (Out, error) functions, panics included
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo

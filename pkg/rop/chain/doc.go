// Package chain provides a fluent wrapper over solo primitives for
// synchronous composition of Result[T] values.
//
// Same-type steps are methods (Ensure, EnsureResult, Observe); steps that
// change the value type are free functions (Then, ThenTry, Map) since Go
// methods cannot introduce new type parameters.
package chain

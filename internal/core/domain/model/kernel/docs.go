// Package kernel provides the identifier value object shared by every aggregate
// of the food ordering domain.
//
// UUID is immutable and comparable, so it is safe to copy between goroutines and
// to use as a map key.
package kernel

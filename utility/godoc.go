// Package utility provides a set of general-purpose helper functions shared
// by the rag-lite packages. It includes JSON unmarshalling with generics and
// common operations on slices and pointers.
//
// This package is intended for convenience and to reduce boilerplate code
// in applications.
package utility

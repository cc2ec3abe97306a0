// Package mocks provides mock implementations of the store interfaces for
// testing. Each mock exposes function fields so individual tests can
// override exactly the behavior they exercise, backed by simple in-memory
// defaults.
package mocks

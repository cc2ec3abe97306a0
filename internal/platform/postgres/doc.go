// Package postgres provides PostgreSQL implementations of the store
// interfaces. Each store receives its database handle from the caller and
// issues single-statement operations wherever possible; the comment insert is
// the only multi-statement sequence and runs inside a transaction.
package postgres

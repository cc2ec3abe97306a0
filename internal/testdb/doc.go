// Package testdb provides helpers for database integration tests: opening a
// connection from the DATABASE_URL environment variable (skipping the test
// when it is unset), applying the schema migrations, and loading a small
// fixture dataset with known contents.
package testdb

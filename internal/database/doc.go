// Package database builds Postgres connection strings and pools for the
// optional database sink.
package database

// Package pgwriter persists a generated population to Postgres. It is an
// optional sink behind the output serializer; the generation core never
// touches the database.
package pgwriter

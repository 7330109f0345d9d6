// Package sweep drives the core comparators over whole collections and
// materialises their lazy results into tables and motif reports.
//
// It owns loop validation and ordering; it never formats output.
package sweep

// Package tracing integrates observability back-ends with the counsel engine
// to provide tracing information for allocation runs. All instrumentation is
// kept in a separate package so that applications which do not require
// tracing can exclude it from their build.
package tracing

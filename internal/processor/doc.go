// Package processor contains the core pipeline for translating a
// requirements dataset. It orchestrates resume bookkeeping, batching,
// cache lookups, provider calls and output flushing. The output file is
// rewritten after every batch so an interrupted run loses at most one
// batch of work.
package processor

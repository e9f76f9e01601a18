// Package translation provides English to Vietnamese translation of
// requirement lines using LLM APIs. Providers translate whole batches in
// a single API call and guarantee one output line per input line; a retry
// decorator adds exponential backoff and a circuit breaker around any
// provider.
package translation

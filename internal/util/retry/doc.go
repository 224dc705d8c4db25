// Package retry provides exponential backoff retry logic for transient failures.
//
// The [Do] function retries an operation with configurable max attempts,
// initial delay, and maximum delay. It is used for SSH connections to
// freshly launched instances, which refuse connections until their boot
// sequence finishes.
package retry

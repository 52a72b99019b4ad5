// Package batch computes many chart reports concurrently with a bounded
// number of workers. Results keep the order of the inputs; a failing item
// does not fail its siblings, but cancelling the context stops the batch.
package batch

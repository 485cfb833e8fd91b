// Package streamwc implements a word counter fed by a Redis Stream.
//
// Clients append count messages to a stream; a single Counter drains the
// stream from the beginning, tallies word frequencies in memory and
// checkpoints its state into a Redis hash. A disconnect message persists the
// state and bumps a version counter; a terminate message persists the state
// and stops the consumer loop.
package streamwc

// Package parallel provides a bounded worker pool whose results come back in
// submission order.
//
// Task sources are read through it so that slow files do not serialise the
// run while the agenda still sees declarations in command-line order.
package parallel

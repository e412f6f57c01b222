// Package id generates short, process-unique, sortable identifiers used to
// name stopwatches that have no natural name of their own (for example one
// per demo worker goroutine).
//
// # Format
//
// An ID is a millisecond timestamp plus a per-millisecond sequence number.
// String renders it as "<ms base36>-<seq>", so IDs produced by one Generator
// sort by creation order when compared with Compare.
//
// # Monotonicity
//
// If the system clock regresses, the Generator pins to the last seen
// millisecond and keeps incrementing the sequence, so it never repeats an ID.
//
// Usage
//
//	g := id.NewGenerator()
//	name := "ID " + g.Next().String()
package id

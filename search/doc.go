// Package search runs document searches off the control goroutine.
//
// A Pool bounds how many searches scan concurrently. Each submission returns
// a Task that can be cancelled and that yields at most one result. Tasks
// search an immutable buffer.Snapshot, so the live buffer may keep changing
// while a search runs; positions in a result must be clamped against the
// live buffer before use.
package search

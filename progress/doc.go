// Package progress provides the cancellation token, thread-status
// enumeration, and progress-event shape shared by the search and fill
// engines.
//
// The token is a single atomic boolean polled cooperatively, the same
// shape the teacher's bfs package polls via context.Context's Done
// channel at the top of its main loop and before each neighbor
// expansion; here cancellation additionally survives a wall-clock
// timeout, checked at the same polling points.
package progress

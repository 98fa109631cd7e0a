// Package engine runs link requests through validation, conflict
// detection, the optional merge and link creation, and keeps the history
// of successful links.
//
// The engine is a small state machine:
//
//	Idle -> Validating -> Linking -> Done -> Idle
//	                   \-> ConfirmationPending --ConfirmMerge--> Linking | Done
//
// Every call returns exactly one types.Outcome. Done is passed through on
// the way back to Idle, so between calls the engine is either Idle or
// holding one request in ConfirmationPending. It is not safe for concurrent
// use; shells issue one call at a time.
package engine

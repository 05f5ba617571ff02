// Package logging provides structured logging for the stepper control and
// its demo CLI.
//
// It wraps a global zap logger. Logging is silent unless a level is given
// to Initialize or set in STEPPER_LOG_LEVEL, so embedding the control in
// a host program produces no output by default.
//
// # Domain Helpers
//
//	logging.LogCommit("tap", 4, 5)
//	logging.LogRejected("15", "range overflow", true, 10)
//	logging.LogRepeat("increment", "start", 8)
//
// # Configuration
//
//	if err := logging.Initialize("debug", "/tmp/stepper.log"); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging

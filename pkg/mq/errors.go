package mq

// TempError marks a handler failure as retryable so the consumer
// requeues the delivery instead of dropping it.
type TempError struct {
	Err error
}

func (e TempError) Error() string { return e.Err.Error() }

func (e TempError) Unwrap() error { return e.Err }

func (e TempError) Temporary() bool { return true }

// Temporary wraps err so it reports itself as retryable.
func Temporary(err error) error {
	return TempError{Err: err}
}

package cli

import "errors"

const (
	ExitOK      = 0
	ExitFailure = 1
)

// ExitError carries the process exit code out of a command. The command is expected to have reported the failure to
// the user already.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func ExitWithCode(code int, err error) *ExitError {
	if err == nil {
		return nil
	}

	return &ExitError{
		Code: code,
		Err:  err,
	}
}

// ExitCode maps the error returned by a command on a process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitFailure
}

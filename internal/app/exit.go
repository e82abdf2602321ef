package app

const (
	exitCodeFailure = 1
)

// ExitError carries the process exit code for main.
type ExitError struct {
	Code int
	Msg  string
}

func (e ExitError) Error() string { return e.Msg }
func (e ExitError) ExitCode() int { return e.Code }

func fail(msg string) error {
	return ExitError{Code: exitCodeFailure, Msg: msg}
}

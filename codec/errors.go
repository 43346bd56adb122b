package codec

import "github.com/plausiblelabs/rcodec/codecerr"

// codecErrf builds a context-free codecerr.Error, returned as a plain error
// so callers compose it with the rest of the stdlib error machinery.
func codecErrf(format string, args ...any) error {
	return codecerr.Newf(format, args...)
}

// pushContext adds label as the outermost context segment of err if err
// carries rcodec's structured error type, leaving any other error
// untouched.
func pushContext(label string, err error) error {
	if ce, ok := err.(*codecerr.Error); ok {
		return ce.Push(label)
	}
	return err
}

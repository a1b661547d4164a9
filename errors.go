package symcore

import "fmt"

// Code is one of the ABI-stable result codes every encoder returns.
type Code int

// Result codes. 0 is success; 1-4 are warnings that may be promoted to
// errors under WarnFailAll; 5 and above are hard failures.
const (
	CodeSuccess           Code = 0
	CodeHRTTruncated      Code = 1
	CodeInvalidOptionWarn Code = 2
	CodeUsesECI           Code = 3
	CodeNoncompliant      Code = 4
	CodeTooLong           Code = 5
	CodeInvalidData       Code = 6
	CodeInvalidCheck      Code = 7
	CodeInvalidOption     Code = 8
	CodeEncodingProblem   Code = 9
	CodeMemory            Code = 11
)

// IsWarning reports whether c is one of the four warning-range codes.
func (c Code) IsWarning() bool {
	return c >= CodeHRTTruncated && c <= CodeNoncompliant
}

// EncodeError is the error type every encoder in symcore returns. It
// carries the numeric ABI code alongside a human string, matching an
// (errno, errtxt) pair.
type EncodeError struct {
	Code    Code
	Message string
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("symcore: %s", e.Message)
}

// Warning reports whether this error is in the warning range (1-4).
func (e *EncodeError) Warning() bool {
	return e.Code.IsWarning()
}

// newError builds an *EncodeError the way a plain fmt.Errorf would:
// one line, the offending value quoted.
func newError(code Code, format string, args ...any) *EncodeError {
	return &EncodeError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// promote escalates a warning-range error to CodeInvalidOption when the
// symbol's WarnLevel demands it: warnings are promoted to errors when
// warn_level is set to fail-all.
func promote(sym *Symbol, err *EncodeError) *EncodeError {
	if err == nil {
		return nil
	}
	if err.Warning() && sym.WarnLevel == WarnFailAll {
		return &EncodeError{Code: CodeInvalidOption, Message: err.Message + " (promoted: warn_level=fail_all)"}
	}
	return err
}

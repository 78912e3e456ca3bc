package cluster

import "fmt"

// ErrorKind classifies the failures the cluster package can report. It lets
// callers distinguish a bad index from a bad argument without string
// matching, mirroring the layered fmt.Errorf("...: %w", err) wrapping the
// rest of this module uses.
type ErrorKind int

const (
	// OutOfRange addresses a cluster or point index beyond the current size.
	OutOfRange ErrorKind = iota
	// InvalidArgument covers k == 0, an empty MSet, or k > len(mset).
	InvalidArgument
	// Unimplemented covers iterator operations carried over from the
	// source contract (position lists, point term-frequency) that this
	// port does not support.
	Unimplemented
)

func (k ErrorKind) String() string {
	switch k {
	case OutOfRange:
		return "out of range"
	case InvalidArgument:
		return "invalid argument"
	case Unimplemented:
		return "unimplemented"
	default:
		return "unknown"
	}
}

// Error is the error type this package returns for bad indices, bad
// arguments and unsupported iterator operations. Journal.Finish returns
// wrapped I/O errors and Drain passes on the DocumentSource's own errors,
// neither of which is an *Error.
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("cluster: %s: %s", e.Kind, e.Msg)
}

func outOfRangef(format string, args ...any) error {
	return &Error{Kind: OutOfRange, Msg: fmt.Sprintf(format, args...)}
}

func invalidArgumentf(format string, args ...any) error {
	return &Error{Kind: InvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

func unimplementedf(format string, args ...any) error {
	return &Error{Kind: Unimplemented, Msg: fmt.Sprintf(format, args...)}
}

// IsOutOfRange reports whether err is a cluster.Error of kind OutOfRange.
func IsOutOfRange(err error) bool { return kindOf(err) == OutOfRange }

// IsInvalidArgument reports whether err is a cluster.Error of kind InvalidArgument.
func IsInvalidArgument(err error) bool { return kindOf(err) == InvalidArgument }

// IsUnimplemented reports whether err is a cluster.Error of kind Unimplemented.
func IsUnimplemented(err error) bool { return kindOf(err) == Unimplemented }

func kindOf(err error) ErrorKind {
	ce, ok := err.(*Error)
	if !ok {
		return -1
	}
	return ce.Kind
}

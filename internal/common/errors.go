package common

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

type ErrorKind uint8

const (
	// ErrorKindOutOfRange: block below the earliest available block.
	ErrorKindOutOfRange ErrorKind = iota + 1
	// ErrorKindNotFound: header, body, transaction, receipt or segment absent.
	ErrorKindNotFound
	// ErrorKindStoreAccess: I/O or decode failure in either storage tier.
	ErrorKindStoreAccess
	// ErrorKindInvalidArgument: malformed caller input, rejected before any store access.
	ErrorKindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindOutOfRange:
		return "out of range"
	case ErrorKindNotFound:
		return "not found"
	case ErrorKindStoreAccess:
		return "store access error"
	case ErrorKindInvalidArgument:
		return "invalid argument"
	default:
		return "unknown error"
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrOutOfRange      = &Error{Kind: ErrorKindOutOfRange}
	ErrNotFound        = &Error{Kind: ErrorKindNotFound}
	ErrStoreAccess     = &Error{Kind: ErrorKindStoreAccess}
	ErrInvalidArgument = &Error{Kind: ErrorKindInvalidArgument}
)

type Error struct {
	Kind   ErrorKind
	Op     string
	Block  *uint64
	Record *uint64
	Err    error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.String())
	if e.Op != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Op)
	}
	if e.Block != nil {
		fmt.Fprintf(&sb, " (block %d)", *e.Block)
	}
	if e.Record != nil {
		fmt.Fprintf(&sb, " (record %d)", *e.Record)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op == "" && t.Block == nil && t.Record == nil && t.Err == nil {
		return t.Kind == e.Kind
	}
	return t == e
}

// AtBlock returns a copy of the error annotated with a block number.
func (e *Error) AtBlock(n uint64) *Error {
	cp := *e
	cp.Block = &n
	return &cp
}

// AtRecord returns a copy of the error annotated with a logical record number.
func (e *Error) AtRecord(n uint64) *Error {
	cp := *e
	cp.Record = &n
	return &cp
}

// NewStoreAccessError wraps an engine failure, attaching a stack for the zerolog stack marshaler.
func NewStoreAccessError(op string, err error) *Error {
	if err == nil {
		err = errors.New("unknown failure")
	}
	return &Error{Kind: ErrorKindStoreAccess, Op: op, Err: pkgerrors.WithStack(err)}
}

func NewNotFoundError(op string, format string, args ...any) *Error {
	return &Error{Kind: ErrorKindNotFound, Op: op, Err: fmt.Errorf(format, args...)}
}

func NewInvalidArgumentError(op string, format string, args ...any) *Error {
	return &Error{Kind: ErrorKindInvalidArgument, Op: op, Err: fmt.Errorf(format, args...)}
}

func NewOutOfRangeError(op string, block, earliest uint64) *Error {
	return (&Error{Kind: ErrorKindOutOfRange, Op: op, Err: fmt.Errorf("earliest available block is %d", earliest)}).AtBlock(block)
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

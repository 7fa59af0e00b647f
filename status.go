package pixbase

import "strconv"

// Status is the result of a fallible operation. Zero means OK, a positive
// value is a recoverable suspension (for example, more input is needed) and a
// negative value is an unrecoverable error. Its bits:
//   - bit        31 (the sign bit) marks an error.
//   - bits 30 .. 24 are a package-local numeric code.
//   - bits 23 .. 21 are reserved.
//   - bits 20 ..  0 are the package namespace, a base-38 value.
//
// The layout is shared with existing decoders and must not change. Use the
// methods rather than manipulating the bits directly.
type Status int32

const (
	statusErrorBit  = uint32(1) << 31
	statusCodeShift = 24
	statusCodeMask  = 0x7F
	namespaceMask   = 1<<21 - 1
)

// StatusOK is the zero Status.
const StatusOK Status = 0

// NamespaceBase is the base-38 namespace of the statuses defined here.
var NamespaceBase = mustBase38("base")

// Statuses of the base package.
var (
	ErrorBadReceiver               = MakeError(NamespaceBase, 1)
	ErrorBadArgument               = MakeError(NamespaceBase, 2)
	ErrorBadArgumentLengthTooShort = MakeError(NamespaceBase, 3)
	ErrorUnsupportedOption         = MakeError(NamespaceBase, 4)
	ErrorBadPaletteLength          = MakeError(NamespaceBase, 5)
	ErrorClosedForWrites           = MakeError(NamespaceBase, 6)
	ErrorBadCallSequence           = MakeError(NamespaceBase, 7)
	SuspensionShortRead            = MakeSuspension(NamespaceBase, 1)
	SuspensionShortWrite           = MakeSuspension(NamespaceBase, 2)
)

var baseMessages = map[Status]string{
	ErrorBadReceiver:               "bad receiver",
	ErrorBadArgument:               "bad argument",
	ErrorBadArgumentLengthTooShort: "bad argument (length too short)",
	ErrorUnsupportedOption:         "unsupported option",
	ErrorBadPaletteLength:          "bad palette length",
	ErrorClosedForWrites:           "closed for writes",
	ErrorBadCallSequence:           "bad call sequence",
	SuspensionShortRead:            "short read",
	SuspensionShortWrite:           "short write",
}

// MakeError returns the error Status with the given package-local code in
// the given namespace. Only the low 7 bits of code are used.
func MakeError(namespace, code uint32) Status {
	return Status(statusErrorBit | (code&statusCodeMask)<<statusCodeShift | namespace&namespaceMask)
}

// MakeSuspension returns the suspension Status with the given package-local
// code in the given namespace. A zero code is bumped to 1 so that the result
// is never confused with StatusOK.
func MakeSuspension(namespace, code uint32) Status {
	code &= statusCodeMask
	if code == 0 {
		code = 1
	}
	return Status(code<<statusCodeShift | namespace&namespaceMask)
}

// IsError reports whether s is an unrecoverable error.
func (s Status) IsError() bool { return s < 0 }

// IsOK reports whether s is StatusOK.
func (s Status) IsOK() bool { return s == 0 }

// IsSuspension reports whether s is a recoverable suspension.
func (s Status) IsSuspension() bool { return s > 0 }

// Code returns the package-local code, bits 30 .. 24.
func (s Status) Code() uint32 {
	return (uint32(s) >> statusCodeShift) & statusCodeMask
}

// Namespace returns the base-38 package namespace, bits 20 .. 0.
func (s Status) Namespace() uint32 {
	return uint32(s) & namespaceMask
}

// String renders s as "#pkg: message" for errors and "$pkg: message" for
// suspensions. It depends only on the integer value of s.
func (s Status) String() string {
	if s == 0 {
		return "ok"
	}
	prefix := "$"
	if s.IsError() {
		prefix = "#"
	}
	ns := Base38Decode(s.Namespace())
	if msg, ok := baseMessages[s]; ok {
		return prefix + ns + ": " + msg
	}
	kind := "suspension"
	if s.IsError() {
		kind = "error"
	}
	return prefix + ns + ": " + kind + " code " + strconv.FormatUint(uint64(s.Code()), 10)
}

// Error implements the error interface.
func (s Status) Error() string { return s.String() }

// Err returns nil for StatusOK and s otherwise, so that a Status can be
// returned through an error-typed result without a non-nil OK value.
func (s Status) Err() error {
	if s == 0 {
		return nil
	}
	return s
}

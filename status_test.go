package pixbase

import (
	"errors"
	"testing"
)

func TestStatusBitLayout(t *testing.T) {
	tests := []struct {
		name      string
		status    Status
		isError   bool
		isSuspend bool
		code      uint32
	}{
		{"bad receiver", ErrorBadReceiver, true, false, 1},
		{"bad argument", ErrorBadArgument, true, false, 2},
		{"length too short", ErrorBadArgumentLengthTooShort, true, false, 3},
		{"unsupported option", ErrorUnsupportedOption, true, false, 4},
		{"short read", SuspensionShortRead, false, true, 1},
		{"short write", SuspensionShortWrite, false, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.status.IsError(); got != tt.isError {
				t.Errorf("IsError() = %v, want %v", got, tt.isError)
			}
			if got := tt.status.IsSuspension(); got != tt.isSuspend {
				t.Errorf("IsSuspension() = %v, want %v", got, tt.isSuspend)
			}
			if tt.status.IsOK() {
				t.Error("IsOK() = true, want false")
			}
			if got := tt.status.Code(); got != tt.code {
				t.Errorf("Code() = %d, want %d", got, tt.code)
			}
			if got := tt.status.Namespace(); got != NamespaceBase {
				t.Errorf("Namespace() = %d, want %d", got, NamespaceBase)
			}
			if got := uint32(tt.status) & (7 << 21); got != 0 {
				t.Errorf("reserved bits = %#x, want 0", got)
			}
		})
	}
}

func TestStatusOK(t *testing.T) {
	if !StatusOK.IsOK() || StatusOK.IsError() || StatusOK.IsSuspension() {
		t.Error("StatusOK predicates are inconsistent")
	}
	if err := StatusOK.Err(); err != nil {
		t.Errorf("StatusOK.Err() = %v, want nil", err)
	}
	if got := StatusOK.String(); got != "ok" {
		t.Errorf("StatusOK.String() = %q, want %q", got, "ok")
	}
}

func TestStatusString(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{ErrorBadReceiver, "#base: bad receiver"},
		{ErrorBadArgumentLengthTooShort, "#base: bad argument (length too short)"},
		{ErrorUnsupportedOption, "#base: unsupported option"},
		{ErrorBadPaletteLength, "#base: bad palette length"},
		{SuspensionShortRead, "$base: short read"},
		{SuspensionShortWrite, "$base: short write"},
		{MakeError(NamespaceBase, 99), "#base: error code 99"},
		{MakeSuspension(NamespaceBase, 42), "$base: suspension code 42"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.status.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.status.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusStringIsPureFunctionOfValue(t *testing.T) {
	s := Status(int32(ErrorBadArgument))
	if s.String() != ErrorBadArgument.String() {
		t.Errorf("String() differs for equal values: %q vs %q", s.String(), ErrorBadArgument.String())
	}
}

func TestStatusAsError(t *testing.T) {
	var err error = ErrorBadReceiver.Err()
	if !errors.Is(err, ErrorBadReceiver) {
		t.Errorf("errors.Is(%v, ErrorBadReceiver) = false, want true", err)
	}
	var s Status
	if !errors.As(err, &s) || s != ErrorBadReceiver {
		t.Errorf("errors.As() = %v, want %v", s, ErrorBadReceiver)
	}
}

func TestMakeStatusCustomNamespace(t *testing.T) {
	ns, ok := Base38Encode("gif")
	if !ok {
		t.Fatal("Base38Encode(\"gif\") failed")
	}
	e := MakeError(ns, 5)
	if !e.IsError() || e.Code() != 5 || e.Namespace() != ns {
		t.Errorf("MakeError(gif, 5) = %#x: error=%v code=%d ns=%d", uint32(e), e.IsError(), e.Code(), e.Namespace())
	}
	if got := e.String(); got != "#gif: error code 5" {
		t.Errorf("String() = %q, want %q", got, "#gif: error code 5")
	}
	if got := MakeSuspension(ns, 0); !got.IsSuspension() || got.Code() != 1 {
		t.Errorf("MakeSuspension(gif, 0) = %#x, want code 1 suspension", uint32(got))
	}
	if got := MakeError(ns, 0x80|3).Code(); got != 3 {
		t.Errorf("MakeError code masking = %d, want 3", got)
	}
}

func TestBase38(t *testing.T) {
	tests := []struct {
		in   string
		ok   bool
		want string
	}{
		{"base", true, "base"},
		{"png", true, "png"},
		{"a", true, "a"},
		{"zzzz", true, "zzzz"},
		{"9?", true, "9?"},
		{"", false, ""},
		{"toolong", false, ""},
		{"BASE", false, ""},
		{"a-b", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			u, ok := Base38Encode(tt.in)
			if ok != tt.ok {
				t.Fatalf("Base38Encode(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if !ok {
				return
			}
			if u > Base38Max || u >= 1<<21 {
				t.Errorf("Base38Encode(%q) = %d, exceeds 21 bits", tt.in, u)
			}
			if got := Base38Decode(u); got != tt.want {
				t.Errorf("Base38Decode(%d) = %q, want %q", u, got, tt.want)
			}
		})
	}

	if got := Base38Decode(Base38Max + 1); got != "?" {
		t.Errorf("Base38Decode(Max+1) = %q, want %q", got, "?")
	}
}

package pixel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSwizzlerLogging(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSwizzler(WithLogger(l))

	mustPrepare(t, s, FormatRGB, nil, FormatBGR, nil, BlendSrc)
	if out := buf.String(); !strings.Contains(out, "level=DEBUG") || !strings.Contains(out, "route=swap_rb") {
		t.Errorf("Prepare() debug log = %q", out)
	}

	buf.Reset()
	s.Prepare(FormatRGB, nil, FormatYUV, nil, BlendSrc)
	if out := buf.String(); !strings.Contains(out, "level=WARN") || !strings.Contains(out, "src=YUV") {
		t.Errorf("rejected Prepare() warn log = %q", out)
	}

	buf.Reset()
	s.Swizzle(make([]byte, 30), nil, make([]byte, 30))
	if buf.Len() != 0 {
		t.Errorf("Swizzle() logged %q", buf.String())
	}
}

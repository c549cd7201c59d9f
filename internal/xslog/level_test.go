package xslog

import (
	"log/slog"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Level
		wantErr bool
	}{
		{name: "debug", input: "debug", want: LevelDebug},
		{name: "upper case", input: "WARN", want: LevelWarn},
		{name: "surrounding space", input: " error ", want: LevelError},
		{name: "info", input: "info", want: LevelInfo},
		{name: "empty", input: "", wantErr: true},
		{name: "unknown", input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_UnmarshalText(t *testing.T) {
	t.Parallel()

	var l Level
	if err := l.UnmarshalText([]byte("debug")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l.ToSlog() != slog.LevelDebug {
		t.Errorf("ToSlog() = %v, want %v", l.ToSlog(), slog.LevelDebug)
	}

	if err := l.UnmarshalText([]byte("nope")); err == nil {
		t.Error("UnmarshalText(nope) error = nil, want error")
	}
	if l != LevelDebug {
		t.Errorf("level changed on error: %q", l)
	}
}

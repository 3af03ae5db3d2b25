package logging

import "testing"

func TestNew(t *testing.T) {
	tests := []struct {
		level, format string
		wantErr       bool
	}{
		{"info", "console", false},
		{"DEBUG", "json", false},
		{"warn", "", false},
		{"loud", "console", true},
		{"info", "xml", true},
	}

	for _, tt := range tests {
		logger, err := New(tt.level, tt.format)
		if (err != nil) != tt.wantErr {
			t.Fatalf("New(%q, %q) err = %v, wantErr %v", tt.level, tt.format, err, tt.wantErr)
		}
		if err == nil && logger == nil {
			t.Fatalf("New(%q, %q) returned nil logger", tt.level, tt.format)
		}
	}
}

package util

import (
	"runtime"
	"testing"
)

func TestCurrentMethod_CoverAll(t *testing.T) {
	// normal path
	name := CurrentMethod(1)
	if name == "unknown" {
		t.Errorf("Expected a function name, got 'unknown'")
	}

	// fn == nil
	origFuncForPC := funcForPC
	funcForPC = func(pc uintptr) *runtime.Func { return nil }
	defer func() { funcForPC = origFuncForPC }()

	name = CurrentMethod(0)
	if name != "unknown" {
		t.Errorf("Expected 'unknown', got '%s'", name)
	}

	// ok == false
	origCaller := caller
	caller = func(skip int) (uintptr, string, int, bool) { return 0, "", 0, false }
	defer func() { caller = origCaller }()

	name = CurrentMethod(0)
	if name != "unknown" {
		t.Errorf("Expected 'unknown', got '%s'", name)
	}
}

func TestSafeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "safe characters pass through",
			input:    "report_2026-08.json",
			expected: "report_2026-08.json",
		},
		{
			name:     "company name with punctuation",
			input:    "Boeing Co. (The) (NYS: BA)",
			expected: "Boeing_Co._The_NYS_BA",
		},
		{
			name:     "runs of unsafe characters collapse",
			input:    "a   ///  b",
			expected: "a_b",
		},
		{
			name:     "leading and trailing underscores stripped",
			input:    "  (Continental)  ",
			expected: "Continental",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeFilename(tt.input); got != tt.expected {
				t.Errorf("SafeFilename(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSafeFilename_CapsAt80(t *testing.T) {
	long := ""
	for i := 0; i < 50; i++ {
		long += "abc"
	}

	got := SafeFilename(long)
	if len(got) != 80 {
		t.Errorf("Expected 80 characters, got %d", len(got))
	}
}

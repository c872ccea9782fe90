package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"no", false},
	}
	for _, tt := range tests {
		t.Setenv("YAMLAPI_TEST_SWITCH", tt.val)
		if got := boolEnv("YAMLAPI_TEST_SWITCH"); got != tt.want {
			t.Errorf("boolEnv(%q) = %v, want %v", tt.val, got, tt.want)
		}
	}
}

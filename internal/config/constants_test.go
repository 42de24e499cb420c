package config

import "testing"

func TestConstants(t *testing.T) {
	if TickInterval <= 0 {
		t.Fatalf("TickInterval must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if MaxNameLength <= 0 {
		t.Fatalf("MaxNameLength must be positive")
	}
	if MinNameWidth > TargetNameWidth {
		t.Fatalf("MinNameWidth must not exceed TargetNameWidth")
	}
}

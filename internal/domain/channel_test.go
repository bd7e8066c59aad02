package domain

import "testing"

func TestEffectiveChannel(t *testing.T) {
	tests := []struct {
		name     string
		override *string
		want     string
	}{
		{name: "nil override", override: nil, want: "91"},
		{name: "blank override", override: StringPtr("   "), want: "91"},
		{name: "empty override", override: StringPtr(""), want: "91"},
		{name: "override wins", override: StringPtr("92"), want: "92"},
		{name: "override trimmed", override: StringPtr(" 93 "), want: "93"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveChannel("91", tt.override); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"0123456789", true},
		{"012-345 6789", true},
		{"+60123456789", true},
		{"(012) 345-6789", true},
		{"12ab34", false},
		{"123", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestValidateTAC(t *testing.T) {
	cases := []struct {
		code string
		want bool
	}{
		{"000000", true},
		{"123456", true},
		{"12345", false},
		{"1234567", false},
		{"12345a", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateTAC(tc.code); got != tc.want {
			t.Errorf("ValidateTAC(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}

func TestGenerateTAC(t *testing.T) {
	for i := 0; i < 50; i++ {
		code := GenerateTAC()
		if !ValidateTAC(code) {
			t.Fatalf("GenerateTAC produced %q", code)
		}
	}
}

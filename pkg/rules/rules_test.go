package rules

import "testing"

func TestIsEnglishOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"plain letters", "Jane", true},
		{"letters with space", "Mary Ann", true},
		{"mixed case", "McGregor", true},
		{"digit", "Jane2", false},
		{"hangul", "제인", false},
		{"accented letter", "José", false},
		{"hyphen", "Anne-Marie", false},
		{"apostrophe", "O'Brien", false},
		{"tab", "Jane\tDoe", false},
		{"newline", "Jane\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsEnglishOnly(tt.input); got != tt.want {
				t.Errorf("IsEnglishOnly(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple address", "a@b.co", true},
		{"dotted local part", "first.last@example.com", true},
		{"plus tag", "user+tag@example.org", true},
		{"empty string", "", false},
		{"missing at", "userexample.com", false},
		{"missing dot after at", "user@example", false},
		{"space inside", "us er@example.com", false},
		{"double at", "user@@example.com", false},
		{"trailing dot only", "user@example.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidEmail(tt.input); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty string", "", true},
		{"digits only", "01012345678", true},
		{"international", "+82 (10) 1234-5678", true},
		{"separators only", "+-() ", true},
		{"letters", "call me", false},
		{"dot", "010.1234", false},
		{"hash", "#1234", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidPhone(tt.input); got != tt.want {
				t.Errorf("IsValidPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

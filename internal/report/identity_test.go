package report

import (
	"strings"
	"testing"
)

func TestValidateIdentityNumber(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"123456789", false},
		{"1234567890", true},
		{"12345678901", false},
		{"123456789012", false},
		{"1234567890123", true},
		{"12345678901234", false},
		{"abcdefghij", true},
		{"ñññññññññá", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ValidateIdentityNumber(tt.input); got != tt.want {
				t.Errorf("ValidateIdentityNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateIdentityNumber_AllLengths(t *testing.T) {
	for n := 0; n <= 20; n++ {
		s := strings.Repeat("9", n)
		want := n == 10 || n == 13
		if got := ValidateIdentityNumber(s); got != want {
			t.Errorf("length %d: got %v, want %v", n, got, want)
		}
	}
}

func TestValidator_Message(t *testing.T) {
	v := NewValidator("")

	if v.Message() != "" {
		t.Fatalf("Expected empty message before any check, got %q", v.Message())
	}

	if v.Validate("123") {
		t.Fatal("Expected 123 to be invalid")
	}
	if v.Message() != MsgInvalidIdentityNumber {
		t.Errorf("Expected %q, got %q", MsgInvalidIdentityNumber, v.Message())
	}

	if !v.Validate("1234567890") {
		t.Fatal("Expected 1234567890 to be valid")
	}
	if v.Message() != "" {
		t.Errorf("Expected message to be cleared, got %q", v.Message())
	}
}

func TestValidator_CustomMessage(t *testing.T) {
	es, err := LabelsFor("es")
	if err != nil {
		t.Fatal(err)
	}
	v := NewValidator(es.InvalidIdentity)
	v.Validate("1")
	if v.Message() != "La cédula debe tener 10 o 13 dígitos." {
		t.Errorf("Unexpected message %q", v.Message())
	}
}

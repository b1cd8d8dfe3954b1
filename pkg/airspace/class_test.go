package airspace

import (
	"errors"
	"testing"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"CTR", "Control Zone"},
		{"TMA", "Terminal Control Area"},
		{"FIR", "Flight Information Region"},
		{"R", "Restricted Area"},
		{"P", "Prohibited Area"},
		{"D", "Danger Area"},
		{"ctr", "Control Zone"},
		{" tma ", "Terminal Control Area"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := TypeName(tt.code)
			if err != nil {
				t.Fatalf("TypeName(%q) failed: %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("TypeName(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestTypeNameUnknown(t *testing.T) {
	_, err := TypeName("XYZZY")
	if err == nil {
		t.Fatal("expected an error for an unknown type code")
	}
	var unknown *ErrUnknownAirspaceType
	if !errors.As(err, &unknown) {
		t.Fatalf("expected ErrUnknownAirspaceType, got %T: %v", err, err)
	}
	if unknown.Code != "XYZZY" {
		t.Errorf("error should carry the raw code, got %q", unknown.Code)
	}
}

func TestKnownTypesResolvable(t *testing.T) {
	codes := KnownTypes()
	if len(codes) == 0 {
		t.Fatal("type vocabulary should not be empty")
	}
	for _, code := range codes {
		if _, err := TypeName(code); err != nil {
			t.Errorf("KnownTypes code %q should resolve: %v", code, err)
		}
	}
}

func TestValidClass(t *testing.T) {
	for _, class := range []string{"A", "B", "C", "D", "E", "F", "G", "g", " c "} {
		if !ValidClass(class) {
			t.Errorf("class %q should be valid", class)
		}
	}
	for _, class := range []string{"", "H", "Z", "AB"} {
		if ValidClass(class) {
			t.Errorf("class %q should not be valid", class)
		}
	}
}

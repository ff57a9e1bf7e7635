package domain

import (
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Role
		ok       bool
	}{
		{"super_admin parses", "super_admin", RoleSuperAdmin, true},
		{"admin parses", "admin", RoleAdmin, true},
		{"manager parses", "manager", RoleManager, true},
		{"tenant parses", "tenant", RoleTenant, true},
		{"unknown role rejected", "owner", "", false},
		{"empty string rejected", "", "", false},
		{"case sensitive", "Admin", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRole(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseRole(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParsePrincipalStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected PrincipalStatus
		ok       bool
	}{
		{"active parses", "active", StatusActive, true},
		{"inactive parses", "inactive", StatusInactive, true},
		{"suspended parses", "suspended", StatusSuspended, true},
		{"unknown status rejected", "deleted", "", false},
		{"empty string rejected", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrincipalStatus(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParsePrincipalStatus(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.expected {
				t.Errorf("ParsePrincipalStatus(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestBuildingScope_Unrestricted(t *testing.T) {
	scope := UnrestrictedScope()

	if !scope.Unrestricted() {
		t.Error("expected unrestricted scope")
	}
	if scope.Empty() {
		t.Error("unrestricted scope must never report empty")
	}
	if !scope.Contains(1) || !scope.Contains(99999) {
		t.Error("unrestricted scope must contain every building")
	}
}

func TestBuildingScope_Restricted(t *testing.T) {
	scope := RestrictedScope([]uint{1, 3})

	if scope.Unrestricted() {
		t.Error("expected restricted scope")
	}
	if scope.Empty() {
		t.Error("non-empty restriction must not report empty")
	}
	if !scope.Contains(1) || !scope.Contains(3) {
		t.Error("restricted scope must contain its own buildings")
	}
	if scope.Contains(2) {
		t.Error("restricted scope must not contain other buildings")
	}
}

// An empty restriction set grants access to nothing. It must never be
// mistaken for the unrestricted case.
func TestBuildingScope_EmptyRestriction(t *testing.T) {
	for name, scope := range map[string]BuildingScope{
		"nil slice":   RestrictedScope(nil),
		"empty slice": RestrictedScope([]uint{}),
	} {
		t.Run(name, func(t *testing.T) {
			if scope.Unrestricted() {
				t.Error("empty restriction must not be unrestricted")
			}
			if !scope.Empty() {
				t.Error("empty restriction must report empty")
			}
			if scope.Contains(1) {
				t.Error("empty restriction must contain nothing")
			}
		})
	}
}

func TestBuildingScope_ZeroValueFailsClosed(t *testing.T) {
	var scope BuildingScope

	if scope.Unrestricted() {
		t.Error("zero value must not be unrestricted")
	}
	if !scope.Empty() {
		t.Error("zero value must report empty")
	}
	if scope.Contains(1) {
		t.Error("zero value must contain nothing")
	}
}

package domain

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		raw    string
		want   Role
		wantOK bool
	}{
		{"STUDENT", RoleStudent, true},
		{"INSTRUCTOR", RoleInstructor, true},
		{"ADMIN", RoleAdmin, true},
		{"DATA_ANALYST", RoleDataAnalyst, true},
		{"student", "", false},
		{"SUPERUSER", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ParseRole(tt.raw)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseRole(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range Roles() {
		if !role.Valid() {
			t.Errorf("%s reported invalid", role)
		}
	}
	if Role("GHOST").Valid() {
		t.Error("unknown role reported valid")
	}
}

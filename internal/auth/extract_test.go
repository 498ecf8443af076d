package auth

import "testing"

func TestExtractToken(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		cookieHeader  string
		want          string
	}{
		{"no sources", "", "", ""},
		{"bearer header", "Bearer abc123", "", "abc123"},
		{"lowercase scheme", "bearer abc123", "", "abc123"},
		{"header wins over cookie", "Bearer header-token", "token=cookie-token", "header-token"},
		{"cookie only", "", "token=cookie-token", "cookie-token"},
		{"cookie among others", "", "theme=dark; token=abc123; lang=en", "abc123"},
		{"cookie with padding", "", "  token=abc123 ", "abc123"},
		{"first cookie match wins", "", "token=first; token=second", "first"},
		{"wrong scheme falls back", "Basic dXNlcjpwYXNz", "token=abc123", "abc123"},
		{"bearer without value falls back", "Bearer ", "token=abc123", "abc123"},
		{"bearer without value and no cookie", "Bearer", "", ""},
		{"cookie name is exact", "", "mytoken=abc123", ""},
		{"empty cookie value", "", "token=", ""},
		{"unrelated cookies", "", "session=xyz; theme=dark", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractToken(tt.authorization, tt.cookieHeader); got != tt.want {
				t.Errorf("ExtractToken(%q, %q) = %q, want %q", tt.authorization, tt.cookieHeader, got, tt.want)
			}
		})
	}
}

package http

import "testing"

func TestIsAllowedOrigin(t *testing.T) {
	tests := []struct {
		name           string
		origin         string
		allowedOrigins []string
		want           bool
	}{
		{
			name:           "wildcard allows everything",
			origin:         "https://app.eatwise.ua",
			allowedOrigins: []string{"*"},
			want:           true,
		},
		{
			name:           "exact match",
			origin:         "https://app.eatwise.ua",
			allowedOrigins: []string{"https://app.eatwise.ua"},
			want:           true,
		},
		{
			name:           "prefix wildcard match",
			origin:         "https://staging.eatwise.ua",
			allowedOrigins: []string{"https://staging.*"},
			want:           true,
		},
		{
			name:           "no match",
			origin:         "https://evil.example.com",
			allowedOrigins: []string{"https://app.eatwise.ua"},
			want:           false,
		},
		{
			name:           "empty allowed list",
			origin:         "https://app.eatwise.ua",
			allowedOrigins: []string{},
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isAllowedOrigin(tt.origin, tt.allowedOrigins); got != tt.want {
				t.Errorf("isAllowedOrigin(%q, %v) = %v, want %v", tt.origin, tt.allowedOrigins, got, tt.want)
			}
		})
	}
}

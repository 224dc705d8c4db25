package naming

import "testing"

func TestInstance(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "single instance keeps base name",
			got:      Instance("web", 1, 1),
			expected: "web",
		},
		{
			name:     "first of batch",
			got:      Instance("worker", 1, 3),
			expected: "worker-1",
		},
		{
			name:     "last of batch",
			got:      Instance("worker", 3, 3),
			expected: "worker-3",
		},
		{
			name:     "empty base stays empty",
			got:      Instance("", 2, 3),
			expected: "",
		},
		{
			name:     "base with hyphens",
			got:      Instance("db-replica", 2, 2),
			expected: "db-replica-2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}

func TestKeyFile(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "plain key name",
			got:      KeyFile("mykey"),
			expected: "mykey.pem",
		},
		{
			name:     "key name with dots",
			got:      KeyFile("team.prod"),
			expected: "team.prod.pem",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}

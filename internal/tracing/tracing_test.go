package tracing

import (
	"context"
	"testing"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectError bool
	}{
		{
			name: "disabled",
			cfg:  Config{Enabled: false},
		},
		{
			name:        "enabled without endpoint",
			cfg:         Config{Enabled: true},
			expectError: true,
		},
		{
			name: "enabled with endpoint",
			cfg:  Config{Enabled: true, Endpoint: "localhost:4317"},
		},
		{
			name: "enabled with insecure TLS",
			cfg:  Config{Enabled: true, Endpoint: "localhost:4317", TLSInsecure: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.cfg)
			if tt.expectError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
			if provider != nil && provider.IsEnabled() != tt.cfg.Enabled {
				t.Errorf("Provider enabled=%v, want %v", provider.IsEnabled(), tt.cfg.Enabled)
			}
			if provider != nil {
				if err := provider.Shutdown(context.Background()); err != nil && !tt.cfg.Enabled {
					t.Errorf("Shutdown of disabled provider returned error: %v", err)
				}
			}
		})
	}
}

package config

import (
	"os"
	"testing"
)

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name          string
		envVars       map[string]string
		expectedPort  string
		expectedWidth int
	}{
		{
			name:          "default port when PORT not set",
			envVars:       map[string]string{},
			expectedPort:  "8000",
			expectedWidth: 200,
		},
		{
			name:          "uses PORT env var when set",
			envVars:       map[string]string{"PORT": "3000"},
			expectedPort:  "3000",
			expectedWidth: 200,
		},
		{
			name:          "uses LABEL_WIDTH env var when set",
			envVars:       map[string]string{"LABEL_WIDTH": "320"},
			expectedPort:  "8000",
			expectedWidth: 320,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			// Set test environment variables
			for k, v := range tt.envVars {
				os.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("LoadFromEnv() error = %v", err)
			}

			if cfg.Server.Port != tt.expectedPort {
				t.Errorf("Port = %v, want %v", cfg.Server.Port, tt.expectedPort)
			}

			if cfg.Label.Width != tt.expectedWidth {
				t.Errorf("Label.Width = %v, want %v", cfg.Label.Width, tt.expectedWidth)
			}
		})
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	if cfg.Server.LogLevel != "info" {
		t.Errorf("Server.LogLevel = %v, want info", cfg.Server.LogLevel)
	}
	if cfg.Export.Dir != "exports" {
		t.Errorf("Export.Dir = %v, want exports", cfg.Export.Dir)
	}
	if cfg.Export.PrintDocTTL != 120 {
		t.Errorf("Export.PrintDocTTL = %v, want 120", cfg.Export.PrintDocTTL)
	}
	if cfg.RateLimit.Requests != 20 {
		t.Errorf("RateLimit.Requests = %v, want 20", cfg.RateLimit.Requests)
	}
	if cfg.RateLimit.WindowSeconds != 60 {
		t.Errorf("RateLimit.WindowSeconds = %v, want 60", cfg.RateLimit.WindowSeconds)
	}
	if cfg.Label.Margin != 2 {
		t.Errorf("Label.Margin = %v, want 2", cfg.Label.Margin)
	}
	if cfg.Label.Foreground != "#000000" {
		t.Errorf("Label.Foreground = %v, want #000000", cfg.Label.Foreground)
	}
	if cfg.Label.Background != "#FFFFFF" {
		t.Errorf("Label.Background = %v, want #FFFFFF", cfg.Label.Background)
	}
}

func TestLoadFromEnv_InvalidIntFallsBackToDefault(t *testing.T) {
	os.Clearenv()
	os.Setenv("LABEL_MARGIN", "not-a-number")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}

	// Should use default value when parsing fails
	if cfg.Label.Margin != 2 {
		t.Errorf("Label.Margin = %v, want %v (default)", cfg.Label.Margin, 2)
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8000", LogLevel: "info"},
		Export: ExportConfig{Dir: "exports", PrintDocTTL: 120},
		RateLimit: RateLimitConfig{
			Requests:      20,
			WindowSeconds: 60,
		},
		Label: LabelConfig{
			Width:      200,
			Margin:     2,
			Foreground: "#000000",
			Background: "#FFFFFF",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "port cannot be empty",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Server.LogLevel = "verbose" },
			wantErr: true,
			errMsg:  "log level must be one of debug, info, warn, error",
		},
		{
			name:    "empty export dir",
			mutate:  func(c *Config) { c.Export.Dir = "" },
			wantErr: true,
			errMsg:  "export directory cannot be empty",
		},
		{
			name:    "print doc TTL below 1",
			mutate:  func(c *Config) { c.Export.PrintDocTTL = 0 },
			wantErr: true,
			errMsg:  "print document TTL must be at least 1 second",
		},
		{
			name:    "rate limit below 1",
			mutate:  func(c *Config) { c.RateLimit.Requests = 0 },
			wantErr: true,
			errMsg:  "rate limit must allow at least 1 request",
		},
		{
			name:    "rate window below 1",
			mutate:  func(c *Config) { c.RateLimit.WindowSeconds = 0 },
			wantErr: true,
			errMsg:  "rate limit window must be at least 1 second",
		},
		{
			name:    "label width below 1",
			mutate:  func(c *Config) { c.Label.Width = 0 },
			wantErr: true,
			errMsg:  "label width must be at least 1 pixel",
		},
		{
			name:    "negative label margin",
			mutate:  func(c *Config) { c.Label.Margin = -1 },
			wantErr: true,
			errMsg:  "label margin cannot be negative",
		},
		{
			name:    "invalid foreground color",
			mutate:  func(c *Config) { c.Label.Foreground = "black" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.wantErr && err == nil {
				t.Error("Validate() should return error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() error = %v", err)
			}
			if tt.wantErr && tt.errMsg != "" && err != nil && err.Error() != tt.errMsg {
				t.Errorf("Validate() error = %v, want %v", err, tt.errMsg)
			}
		})
	}
}

func TestLabelConfig_RenderOptions(t *testing.T) {
	label := LabelConfig{
		Width:      320,
		Margin:     4,
		Foreground: "#1A2B3C",
		Background: "#FFFFFF",
	}

	opts, err := label.RenderOptions()
	if err != nil {
		t.Fatalf("RenderOptions() error = %v", err)
	}

	if opts.Width != 320 {
		t.Errorf("Width = %v, want 320", opts.Width)
	}
	if opts.Margin != 4 {
		t.Errorf("Margin = %v, want 4", opts.Margin)
	}
	if opts.Foreground.Hex() != "#1A2B3C" {
		t.Errorf("Foreground = %v, want #1A2B3C", opts.Foreground.Hex())
	}
	if opts.Background.Hex() != "#FFFFFF" {
		t.Errorf("Background = %v, want #FFFFFF", opts.Background.Hex())
	}
}

func TestLabelConfig_RenderOptions_InvalidColor(t *testing.T) {
	label := LabelConfig{
		Width:      200,
		Margin:     2,
		Foreground: "#00",
		Background: "#FFFFFF",
	}

	_, err := label.RenderOptions()
	if err == nil {
		t.Error("RenderOptions() should return error for invalid color")
	}
}

package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/registrar/internal/domain/registry"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	require.False(t, cfg.Debug)
	require.Equal(t, "text", cfg.Output)
	require.Equal(t, "permissive", cfg.Registration.SelectionPolicy)
	require.Equal(t, registry.DefaultMaxAttempts, cfg.Registration.MaxAttempts)
	require.True(t, cfg.UI.ClearScreen)
	require.True(t, cfg.UI.Pause)
	require.Equal(t, "auto", cfg.UI.Color)
}

func TestValidate_Defaults(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "output",
			mutate:  func(c *Config) { c.Output = "yaml" },
			wantErr: `output must be one of "text", "json", got "yaml"`,
		},
		{
			name:    "log level",
			mutate:  func(c *Config) { c.LogLevel = "trace" },
			wantErr: "log_level must be one of",
		},
		{
			name:    "selection policy",
			mutate:  func(c *Config) { c.Registration.SelectionPolicy = "lenient" },
			wantErr: "registration.selection_policy must be one of",
		},
		{
			name:    "negative attempts",
			mutate:  func(c *Config) { c.Registration.MaxAttempts = -1 },
			wantErr: "registration.max_attempts must be at least 0, got -1",
		},
		{
			name:    "too many attempts",
			mutate:  func(c *Config) { c.Registration.MaxAttempts = 20000 },
			wantErr: "registration.max_attempts must be at most 10000",
		},
		{
			name:    "color",
			mutate:  func(c *Config) { c.UI.Color = "rainbow" },
			wantErr: `ui.color must be one of "auto", "always", "never", got "rainbow"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)

			err := Validate(cfg)

			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := Defaults()
	cfg.Output = "xml"
	cfg.UI.Color = "sometimes"

	err := Validate(cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "output")
	require.Contains(t, err.Error(), "ui.color")
}

func TestRegistrationConfig_Options(t *testing.T) {
	cfg := Defaults().Registration
	cfg.SelectionPolicy = "strict"
	cfg.Seed = 11

	opts, err := cfg.Options()
	require.NoError(t, err)

	r := registry.New(opts...)
	require.Equal(t, registry.PolicyStrict, r.Policy())
}

func TestRegistrationConfig_Options_SeedIsReproducible(t *testing.T) {
	cfg := Defaults().Registration
	cfg.Seed = 2024

	register := func() int {
		opts, err := cfg.Options()
		require.NoError(t, err)
		r := registry.New(opts...)
		_, err = r.RegisterProfessor("Ada")
		require.NoError(t, err)
		_, err = r.RegisterSubject("Algo", 1)
		require.NoError(t, err)
		e, err := r.RegisterStudent("Bob", []int{1})
		require.NoError(t, err)
		return e.Registration
	}

	require.Equal(t, register(), register())
}

func TestRegistrationConfig_Options_InvalidPolicy(t *testing.T) {
	cfg := Defaults().Registration
	cfg.SelectionPolicy = "lenient"

	_, err := cfg.Options()

	require.Error(t, err)
}

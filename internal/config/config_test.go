package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

func envWith(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestNew_BuildsConfig(t *testing.T) {
	// Given: a query and a filename
	args := []string{"Pick", "poem.txt"}

	// When: building the config without CASE_INSENSITIVE
	cfg, err := New(args, envWith(nil))

	// Then: fields are populated and matching is case-sensitive
	require.NoError(t, err)
	assert.Equal(t, Config{Query: "Pick", Filename: "poem.txt"}, cfg)
}

func TestNew_MissingQuery(t *testing.T) {
	_, err := New(nil, envWith(nil))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNoQuery, errors.GetCode(err))
	assert.Contains(t, err.Error(), "No query supplied")
}

func TestNew_MissingFilename(t *testing.T) {
	_, err := New([]string{"Pick"}, envWith(nil))

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNoFilename, errors.GetCode(err))
	assert.Contains(t, err.Error(), "No filename supplied")
	assert.True(t, errors.IsConfig(err))
}

func TestNew_EmptyQueryIsLegal(t *testing.T) {
	cfg, err := New([]string{"", "poem.txt"}, envWith(nil))

	require.NoError(t, err)
	assert.Equal(t, "", cfg.Query)
}

func TestNew_ExtraArgumentsIgnored(t *testing.T) {
	cfg, err := New([]string{"Pick", "poem.txt", "extra", "more"}, envWith(nil))

	require.NoError(t, err)
	assert.Equal(t, "Pick", cfg.Query)
	assert.Equal(t, "poem.txt", cfg.Filename)
}

func TestNew_CaseInsensitiveIsPresenceCheck(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{name: "unset", env: nil, want: false},
		{name: "set to 1", env: map[string]string{CaseInsensitiveEnv: "1"}, want: true},
		{name: "set empty", env: map[string]string{CaseInsensitiveEnv: ""}, want: true},
		{name: "set to 0", env: map[string]string{CaseInsensitiveEnv: "0"}, want: true},
		{name: "set to false", env: map[string]string{CaseInsensitiveEnv: "false"}, want: true},
		{name: "other var only", env: map[string]string{"CASE_SENSITIVE": "1"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New([]string{"q", "f"}, envWith(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.CaseInsensitive)
		})
	}
}

func TestFromEnvironment_ReadsProcessEnv(t *testing.T) {
	t.Setenv(CaseInsensitiveEnv, "")

	cfg, err := FromEnvironment([]string{"q", "f"})

	require.NoError(t, err)
	assert.True(t, cfg.CaseInsensitive)
}

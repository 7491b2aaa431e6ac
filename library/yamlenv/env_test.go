package yamlenv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Port    *Env[int]    `yaml:"port"`
	Host    *Env[string] `yaml:"host"`
	Enabled *Env[bool]   `yaml:"enabled"`
	Missing *Env[string] `yaml:"missing"`
}

func TestEnv_Literal(t *testing.T) {
	var s sample
	require.NoError(t, yaml.Unmarshal([]byte("port: 8080\nhost: localhost:9092\nenabled: true\n"), &s))

	assert.Equal(t, 8080, s.Port.Value)
	assert.Equal(t, "localhost:9092", s.Host.Value)
	assert.True(t, s.Enabled.Value)
	assert.Equal(t, "fallback", s.Missing.Or("fallback"))
}

func TestEnv_FromEnvironment(t *testing.T) {
	t.Setenv("HR_TEST_PORT", "9090")

	var s sample
	require.NoError(t, yaml.Unmarshal([]byte(`port: "${HR_TEST_PORT:8080}"`), &s))

	assert.Equal(t, 9090, s.Port.Value)
	assert.Equal(t, "HR_TEST_PORT", s.Port.Name)
}

func TestEnv_DefaultWhenUnset(t *testing.T) {
	var s sample
	require.NoError(t, yaml.Unmarshal([]byte(`port: "${HR_TEST_UNSET_PORT:8081}"`), &s))

	assert.Equal(t, 8081, s.Port.Value)
}

func TestEnv_InvalidValue(t *testing.T) {
	var s sample
	err := yaml.Unmarshal([]byte(`port: not-a-number`), &s)

	assert.Error(t, err)
}

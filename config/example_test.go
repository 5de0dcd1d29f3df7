package config_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/0xalexb/hjarta-config/config"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	jsonformatter "github.com/0xalexb/hjarta-config/config/formatter/json"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AppConfig represents application configuration.
type AppConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// SetDefaults sets default values for the configuration.
func (c *AppConfig) SetDefaults() bool {
	changed := false

	if c.Host == "" {
		c.Host = "localhost"
		changed = true
	}

	if c.Port == 0 {
		c.Port = 8080
		changed = true
	}

	return changed
}

// Validate validates the configuration.
func (c *AppConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

// StaticDataFetcher implements config.DataFetcher with in-memory content.
type StaticDataFetcher struct {
	Data string
}

// Fetch returns the content as a Text source.
func (f *StaticDataFetcher) Fetch() (config.Source, error) {
	return config.Text(f.Data), nil
}

func ExampleProvider() {
	cfg := &AppConfig{}

	// An empty path parses the entire document.
	provider := config.Provider(cfg, "")

	result, err := provider(jsonformatter.New(), &StaticDataFetcher{Data: `{"host":"example.com"}`})
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	fmt.Printf("Host: %s, Port: %d\n", result.Host, result.Port)
	// Output: Host: example.com, Port: 8080
}

func ExampleReadAs() {
	formatter := jsonformatter.New()

	for _, raw := range []any{`{"test":"json"}`, `{ hello bob }`, 2.0} {
		src, err := config.SourceOf(raw)
		if err != nil {
			fmt.Println("no value:", errors.Is(err, config.ErrNoValue))

			continue
		}

		value, err := config.ReadAs[map[string]string](formatter, src)
		if err != nil {
			fmt.Println("no value:", errors.Is(err, config.ErrNoValue))

			continue
		}

		fmt.Println("value:", value["test"])
	}
	// Output:
	// value: json
	// no value: true
	// no value: true
}

// ServerConfig represents a nested server configuration for testing.
type ServerConfig struct {
	Host    string `json:"host"`
	Port    int    `json:"port"`
	Timeout int    `json:"timeout"`
}

// DatabaseConfig represents a database configuration for testing.
type DatabaseConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
}

const serviceJSON = `{
  "server": {"host": "api.example.com", "port": 8080, "timeout": 30},
  "database": {
    "connection": {"host": "db.example.com", "port": 5432, "name": "myapp"},
    "credentials": {"user": "admin", "password": "secret"}
  }
}`

func TestJSONFormatter_PathNavigation(t *testing.T) {
	t.Parallel()

	formatter := jsonformatter.New()

	t.Run("navigate to nested section", func(t *testing.T) {
		t.Parallel()

		cfg := &ServerConfig{}
		err := formatter.Parse(config.Text(serviceJSON), cfg, "server")
		require.NoError(t, err)

		assert.Equal(t, "api.example.com", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 30, cfg.Timeout)
	})

	t.Run("navigate to deeply nested section from a char stream", func(t *testing.T) {
		t.Parallel()

		cfg := &DatabaseConfig{}
		err := formatter.Parse(config.CharStream{R: strings.NewReader(serviceJSON)}, cfg, "database:connection")
		require.NoError(t, err)

		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "myapp", cfg.Name)
	})

	t.Run("invalid path returns error", func(t *testing.T) {
		t.Parallel()

		cfg := &ServerConfig{}
		err := formatter.Parse(config.Text(serviceJSON), cfg, "nonexistent:path")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrPathNotFound)
	})
}

func TestProvider_WithFileFetcher(t *testing.T) {
	t.Parallel()

	configPath := filepath.Join(t.TempDir(), "config.json")

	err := os.WriteFile(configPath, []byte(`{"api":{"host":"api.example.com","port":3000}}`), 0o600)
	require.NoError(t, err)

	fetcher, err := filefetcher.NewFetcher(configPath)()
	require.NoError(t, err)

	result, err := config.Provider(&AppConfig{}, "api")(jsonformatter.New(), fetcher)
	require.NoError(t, err)

	assert.Equal(t, "api.example.com", result.Host)
	assert.Equal(t, 3000, result.Port)
}

func TestProvider_ValidationFailure(t *testing.T) {
	t.Parallel()

	_, err := config.Provider(&AppConfig{}, "")(jsonformatter.New(), &StaticDataFetcher{Data: `{"port":70000}`})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validating error")
}

func TestProvider_MalformedInput(t *testing.T) {
	t.Parallel()

	_, err := config.Provider(&AppConfig{}, "")(jsonformatter.New(), &StaticDataFetcher{Data: `{ hello bob }`})

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMalformedInput)
}

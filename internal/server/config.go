package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/fincalc/internal/config"
	"github.com/iwvelando/fincalc/pkg/constants"
	"gopkg.in/yaml.v3"
)

// defaultShutdownTimeout bounds graceful shutdown when none is configured.
const defaultShutdownTimeout = 5 * time.Second

// Config defines runtime parameters for the HTTP API.
type Config struct {
	Address         string               `yaml:"address"`
	MaxUploadSize   string               `yaml:"maxUploadSize"`
	ShutdownTimeout string               `yaml:"shutdownTimeout"`
	Logging         config.LoggingConfig `yaml:"logging"`

	uploadSizeBytes int64
	shutdown        time.Duration
}

// DefaultConfig returns the configuration used when no server file exists.
func DefaultConfig() *Config {
	return &Config{
		Address:         constants.DefaultServerAddress,
		MaxUploadSize:   strconv.FormatInt(constants.DefaultMaxUploadSizeBytes, 10),
		ShutdownTimeout: defaultShutdownTimeout.String(),
		uploadSizeBytes: constants.DefaultMaxUploadSizeBytes,
		shutdown:        defaultShutdownTimeout,
	}
}

// LoadConfig reads the server configuration from YAML. A missing file yields
// the defaults without error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes returns the upload limit in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadSizeBytes
}

// ShutdownGrace returns how long in-flight requests get to finish on shutdown.
func (c *Config) ShutdownGrace() time.Duration {
	return c.shutdown
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	size, err := ParseSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxUploadSizeBytes
	}
	c.uploadSizeBytes = size

	c.shutdown = defaultShutdownTimeout
	if raw := strings.TrimSpace(c.ShutdownTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return fmt.Errorf("invalid shutdown timeout %q: %w", raw, err)
		}
		if d > 0 {
			c.shutdown = d
		}
	}
	return nil
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// ParseSize converts a byte string such as "256K" or "2MB" into bytes. An
// empty string yields the default upload limit.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	split := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if split == -1 {
		split = len(s)
	}
	if split == 0 {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	multiplier, ok := sizeUnits[strings.TrimSpace(s[split:])]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit %q", strings.TrimSpace(s[split:]))
	}

	n, err := strconv.ParseInt(s[:split], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}
	if n > (1<<63-1)/multiplier {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return n * multiplier, nil
}

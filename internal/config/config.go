package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string
	LogLevel string

	OperatorWorkers   int
	OperatorQueueSize int

	// Users seeded into the directory. Ids in AdminUserIDs are admins; the
	// TOML file at UsersFile may add more users with explicit roles.
	AdminUserIDs []string
	UsersFile    string

	MetricsEnabled  bool
	ShutdownTimeout time.Duration
}

func ProcessEnvironmentVariables() (*Config, error) {
	env := Config{
		Port:              getEnv("PORT", "9446"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		AdminUserIDs:      splitList(os.Getenv("ADMIN_USER_IDS")),
		UsersFile:         os.Getenv("USERS_FILE"),
		OperatorWorkers:   1,
		OperatorQueueSize: 1000,
		MetricsEnabled:    true,
		ShutdownTimeout:   30 * time.Second,
	}

	var err error
	if env.OperatorWorkers, err = getEnvInt("OPERATOR_WORKERS", env.OperatorWorkers); err != nil {
		return nil, err
	}
	if env.OperatorQueueSize, err = getEnvInt("OPERATOR_QUEUE_SIZE", env.OperatorQueueSize); err != nil {
		return nil, err
	}
	if env.MetricsEnabled, err = getEnvBool("METRICS_ENABLED", env.MetricsEnabled); err != nil {
		return nil, err
	}
	if env.ShutdownTimeout, err = getEnvDuration("SHUTDOWN_TIMEOUT", env.ShutdownTimeout); err != nil {
		return nil, err
	}

	return &env, nil
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.OperatorWorkers < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator workers %d: must be at least 1", c.OperatorWorkers))
	}
	if c.OperatorQueueSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid operator queue size %d: must be at least 1", c.OperatorQueueSize))
	}

	if c.ShutdownTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid shutdown timeout %v: must be positive", c.ShutdownTimeout))
	}

	if c.UsersFile != "" {
		if _, err := os.Stat(c.UsersFile); err != nil {
			problems = append(problems, fmt.Sprintf("users file '%s' is not readable: %v", c.UsersFile, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return i, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "parse %s", key)
	}
	return b, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", key)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

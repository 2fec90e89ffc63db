package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"fooddelivery/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// EventsChannel is the PostgreSQL NOTIFY channel carrying every push event.
	EventsChannel string

	SellerInactivityTimeout     time.Duration
	ReaperSchedule              string
	NotificationCleanupSchedule string
	ReadNotificationRetention   time.Duration
	PublishTimeout              time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "fooddelivery")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("EVENTS_CHANNEL", "food_events")
	v.SetDefault("SELLER_INACTIVITY_TIMEOUT_MINUTES", 5)
	v.SetDefault("REAPER_SCHEDULE", "@every 1m")
	v.SetDefault("NOTIFICATION_CLEANUP_SCHEDULE", "@every 1h")
	v.SetDefault("READ_NOTIFICATION_RETENTION_DAYS", 7)
	v.SetDefault("PUBLISH_TIMEOUT_SECONDS", 5)
}

// LoadConfig reads envFile into the process environment when it exists, then
// resolves every key from the environment with defaults for anything unset.
// Variables already present in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		HTTPPort:                    v.GetString("HTTP_PORT"),
		DBHost:                      v.GetString("DB_HOST"),
		DBPort:                      v.GetString("DB_PORT"),
		DBUser:                      v.GetString("DB_USER"),
		DBPassword:                  v.GetString("DB_PASSWORD"),
		DBName:                      v.GetString("DB_NAME"),
		DBSslMode:                   v.GetString("DB_SSLMODE"),
		EventsChannel:               v.GetString("EVENTS_CHANNEL"),
		SellerInactivityTimeout:     time.Duration(v.GetInt("SELLER_INACTIVITY_TIMEOUT_MINUTES")) * time.Minute,
		ReaperSchedule:              v.GetString("REAPER_SCHEDULE"),
		NotificationCleanupSchedule: v.GetString("NOTIFICATION_CLEANUP_SCHEDULE"),
		ReadNotificationRetention:   time.Duration(v.GetInt("READ_NOTIFICATION_RETENTION_DAYS")) * 24 * time.Hour,
		PublishTimeout:              time.Duration(v.GetInt("PUBLISH_TIMEOUT_SECONDS")) * time.Second,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or non-positive setting at once.
func (c Config) Validate() error {
	var problems []error
	required := []struct {
		key   string
		value string
	}{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_NAME", c.DBName},
		{"EVENTS_CHANNEL", c.EventsChannel},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(r.key))
		}
	}

	positive := []struct {
		key   string
		value time.Duration
	}{
		{"SELLER_INACTIVITY_TIMEOUT_MINUTES", c.SellerInactivityTimeout},
		{"READ_NOTIFICATION_RETENTION_DAYS", c.ReadNotificationRetention},
		{"PUBLISH_TIMEOUT_SECONDS", c.PublishTimeout},
	}
	for _, p := range positive {
		if p.value <= 0 {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				p.key, fmt.Errorf("%s is not greater than 0", p.value)))
		}
	}

	return errors.Join(problems...)
}

// DSN is the libpq connection string shared by gorm and the LISTEN connection.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
	Registry   RegistryConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the classification policy. The 8h/6h thresholds are
// observed business behavior, not law; they stay configurable.
type AttendanceConfig struct {
	PresentHours float64
	PartialHours float64
	WeekendDays  []time.Weekday
}

// RegistryConfig points at the JSON employee registry used for roster import.
type RegistryConfig struct {
	Path string
}

func Load() (*Config, error) {
	// A missing .env file is fine in production, env vars are read directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendly"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// Attendance policy configuration
	presentHours, err := strconv.ParseFloat(getEnv("ATTENDANCE_PRESENT_HOURS", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_PRESENT_HOURS: %w", err)
	}

	partialHours, err := strconv.ParseFloat(getEnv("ATTENDANCE_PARTIAL_HOURS", "6"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid ATTENDANCE_PARTIAL_HOURS: %w", err)
	}

	weekendDays, err := parseWeekdays(getEnv("WEEKEND_DAYS", "Friday,Saturday"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEEKEND_DAYS: %w", err)
	}

	config.Attendance = AttendanceConfig{
		PresentHours: presentHours,
		PartialHours: partialHours,
		WeekendDays:  weekendDays,
	}

	config.Registry = RegistryConfig{
		Path: getEnv("EMPLOYEE_REGISTRY_PATH", "employees.json"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Attendance.PresentHours <= 0 || c.Attendance.PartialHours <= 0 {
		return fmt.Errorf("attendance thresholds must be positive")
	}
	if c.Attendance.PartialHours >= c.Attendance.PresentHours {
		return fmt.Errorf("ATTENDANCE_PARTIAL_HOURS must be below ATTENDANCE_PRESENT_HOURS")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func parseWeekdays(value string) ([]time.Weekday, error) {
	var days []time.Weekday
	for _, part := range strings.Split(value, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", part)
		}
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("at least one weekend day is required")
	}
	return days, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

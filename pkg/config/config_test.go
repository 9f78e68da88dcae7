package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8080" {
		t.Errorf("Expected Port to be 8080, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Database.MaxConns != 25 {
		t.Errorf("Expected DB MaxConns to be 25, got %d", cfg.Database.MaxConns)
	}

	if cfg.Generator.Seed != 42 {
		t.Errorf("Expected Generator Seed to be 42, got %d", cfg.Generator.Seed)
	}

	if cfg.Generator.Years != 3 {
		t.Errorf("Expected Generator Years to be 3, got %d", cfg.Generator.Years)
	}

	if cfg.Data.CachePath != "data/synthetic_parts_demand.csv" {
		t.Errorf("Unexpected cache path: %s", cfg.Data.CachePath)
	}

	if cfg.Redis.Enabled {
		t.Error("Expected Redis to be disabled by default")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("GENERATOR_SEED", "7")
	os.Setenv("GENERATOR_YEARS", "5")
	os.Setenv("LOG_LEVEL", "debug")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("GENERATOR_SEED")
		os.Unsetenv("GENERATOR_YEARS")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Generator.Seed != 7 {
		t.Errorf("Expected Generator Seed to be 7, got %d", cfg.Generator.Seed)
	}

	if cfg.Generator.Years != 5 {
		t.Errorf("Expected Generator Years to be 5, got %d", cfg.Generator.Years)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "invalid")
	defer os.Unsetenv("ENV")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateInvalidStartDate(t *testing.T) {
	os.Setenv("GENERATOR_START_DATE", "01/01/2021")
	defer os.Unsetenv("GENERATOR_START_DATE")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when GENERATOR_START_DATE is malformed, got nil")
	}
}

func TestValidateInvalidYears(t *testing.T) {
	os.Setenv("GENERATOR_YEARS", "0")
	defer os.Unsetenv("GENERATOR_YEARS")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when GENERATOR_YEARS is below 1, got nil")
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	os.Setenv("TEST_DURATION", "2h")
	defer os.Unsetenv("TEST_DURATION")

	duration := getEnvAsDuration("TEST_DURATION", "1h")
	expected := 2 * time.Hour

	if duration != expected {
		t.Errorf("Expected duration to be %v, got %v", expected, duration)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	os.Setenv("TEST_INT", "100")
	defer os.Unsetenv("TEST_INT")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	os.Setenv("TEST_BOOL", "true")
	defer os.Unsetenv("TEST_BOOL")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}
}

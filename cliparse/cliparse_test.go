// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("DATABASE_URL", "file:pulse.db")
	os.Setenv("IP_HASH_SALT", "test-salt")
	os.Setenv("ADMIN_SECRET", "test-secret")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-ip-salt", "s1", "-admin-secret", "s2"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	os.Clearenv()

	tests := []struct {
		name string
		args []string
	}{
		{"missing everything", []string{}},
		{"missing ip salt", []string{"-d", "file:test.db", "-admin-secret", "s"}},
		{"missing admin secret", []string{"-d", "file:test.db", "-ip-salt", "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error for missing required config")
			}
		})
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-d", "x", "-t", "mongodb", "-ip-salt", "s1", "-admin-secret", "s2"})
	if err == nil {
		t.Error("expected error for unsupported database type")
	}
}

func TestParseFlags_SeedFromEnv(t *testing.T) {
	os.Setenv("DATABASE_URL", "file:pulse.db")
	os.Setenv("IP_HASH_SALT", "s1")
	os.Setenv("ADMIN_SECRET", "s2")
	os.Setenv("SEED_QUESTIONS", "true")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.SeedQuestions {
		t.Error("expected SeedQuestions to be set from env")
	}
}

func TestDriverName(t *testing.T) {
	if got := (Config{DatabaseType: "postgres"}).DriverName(); got != "postgres" {
		t.Errorf("expected postgres, got %s", got)
	}
	if got := (Config{DatabaseType: "sqlite"}).DriverName(); got != "sqlite" {
		t.Errorf("expected sqlite, got %s", got)
	}
}

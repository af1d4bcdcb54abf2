package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds demo seeding settings.
type Config struct {
	Email       string `yaml:"email"        env:"SEED_EMAIL"        env-default:"demo@mockapi.dev"`
	Password    string `yaml:"password"     env:"SEED_PASSWORD"     env-default:"demo-password"`
	Name        string `yaml:"name"         env:"SEED_NAME"         env-default:"Demo User"`
	ProjectName string `yaml:"project_name" env:"SEED_PROJECT_NAME" env-default:"Demo project"`
	Count       int    `yaml:"count"        env:"SEED_COUNT"        env-default:"25"`
	DryRun      bool   `yaml:"dry_run"      env:"SEED_DRY_RUN"`
}

// LoadConfig reads seeding configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seed config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seed config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seed config: read env: %w", err)
	}

	return &cfg, nil
}

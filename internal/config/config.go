package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName         = "internscout"
	ConfigFileName  = "config.json"
	ProxiesFileName = "proxies.txt"

	EnvSpreadsheetID = "INTERNSCOUT_SPREADSHEET_ID"
	EnvCredentials   = "INTERNSCOUT_GOOGLE_CREDENTIALS"
)

// Config contains run settings. The spreadsheet id may come from the config
// file or the environment; the credential bundle is environment-only.
type Config struct {
	SpreadsheetID         string   `json:"spreadsheet_id"`
	InternshalaCategories []string `json:"internshala_categories"`
	IndeedQueries         []string `json:"indeed_queries"`
	FetchDelaySeconds     int      `json:"fetch_delay_seconds"`
	AppendDelaySeconds    int      `json:"append_delay_seconds"`
}

func DefaultConfig() Config {
	return Config{
		SpreadsheetID: envString(EnvSpreadsheetID, ""),
		InternshalaCategories: []string{
			"data-analytics",
			"machine-learning",
			"artificial-intelligence",
			"data-science",
			"prompt-engineering",
			"generative-ai",
			"deep-learning",
			"nlp",
		},
		IndeedQueries: []string{
			"Data Analytics Intern",
			"Machine Learning Intern",
			"AI Intern",
			"Data Science Intern",
			"Prompt Engineering Intern",
			"Generative AI Intern",
			"Deep Learning Intern",
			"NLP Intern",
		},
		FetchDelaySeconds:  envInt("INTERNSCOUT_FETCH_DELAY", 2),
		AppendDelaySeconds: envInt("INTERNSCOUT_APPEND_DELAY", 1),
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

func ProxiesPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ProxiesFileName), nil
}

func Load() (Config, error) {
	cfg := DefaultConfig()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := json5.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// LoadCredentials reads the service-account credential bundle from the
// environment. The bundle must be present and valid JSON before any fetch
// or store activity starts.
func LoadCredentials() ([]byte, error) {
	raw := strings.TrimSpace(os.Getenv(EnvCredentials))
	if raw == "" {
		return nil, fmt.Errorf("%s is required", EnvCredentials)
	}
	if !json.Valid([]byte(raw)) {
		return nil, fmt.Errorf("%s does not contain valid JSON", EnvCredentials)
	}
	return []byte(raw), nil
}

// Init writes default config.json and proxies.txt if they don't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	proxiesPath := filepath.Join(dir, ProxiesFileName)
	if _, err := os.Stat(proxiesPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(proxiesPath, []byte(""), 0o644); err != nil {
			return created, err
		}
		created = append(created, proxiesPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func LoadProxies(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) != "" {
		return splitCSV(flagValue), nil
	}

	if env := strings.TrimSpace(os.Getenv("INTERNSCOUT_PROXIES")); env != "" {
		return splitCSV(env), nil
	}

	path, err := ProxiesPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var proxies []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		proxies = append(proxies, line)
	}
	return proxies, nil
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

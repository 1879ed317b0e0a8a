package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const defaultSecretKey = "insecure-dev-key-change-in-production"

type Config struct {
	Server    Server
	Database  Database
	Storage   Storage
	Accounts  []Credential
	SecretKey string
	Debug     bool
	Timezone  string
	SeedData  bool
}

type Server struct {
	Port         string
	AllowedHosts []string
	CORSOrigins  []string
}

type Database struct {
	URL        string
	SQLitePath string
}

// Storage holds the Backblaze B2 bucket used for PDF uploads.
type Storage struct {
	KeyID     string
	AppKey    string
	Bucket    string
	PublicURL string
}

func (s Storage) Configured() bool {
	return s.KeyID != "" && s.AppKey != "" && s.Bucket != ""
}

// Credential is a login account provisioned at start.
type Credential struct {
	Username string
	Password string
}

func NewConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("SQLITE_PATH", "db.sqlite3")
	v.SetDefault("SECRET_KEY", defaultSecretKey)
	v.SetDefault("DEBUG", true)
	v.SetDefault("ALLOWED_HOSTS", "localhost,127.0.0.1")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("SEED_DATA", false)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.AllowedHosts = splitList(v.GetString("ALLOWED_HOSTS"))
	if v.GetString("RAILWAY_ENVIRONMENT") != "" {
		config.Server.AllowedHosts = []string{"*"}
	}
	if domain := v.GetString("CUSTOM_DOMAIN"); domain != "" {
		config.Server.AllowedHosts = append(config.Server.AllowedHosts, domain)
	}
	config.Server.CORSOrigins = append(
		splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		splitList(v.GetString("CSRF_TRUSTED_ORIGINS"))...,
	)

	config.Database.URL = v.GetString("DATABASE_URL")
	config.Database.SQLitePath = v.GetString("SQLITE_PATH")

	config.Storage.KeyID = v.GetString("B2_KEY_ID")
	config.Storage.AppKey = v.GetString("B2_APP_KEY")
	config.Storage.Bucket = v.GetString("B2_BUCKET")
	config.Storage.PublicURL = strings.TrimRight(v.GetString("STORAGE_PUBLIC_URL"), "/")

	config.Accounts = parseAccounts(
		v.GetString("DASHBOARD_USERNAME"),
		v.GetString("DASHBOARD_PASSWORD"),
		v.GetString("DASHBOARD_USERS"),
	)

	config.SecretKey = v.GetString("SECRET_KEY")
	config.Debug = v.GetBool("DEBUG")
	config.Timezone = v.GetString("TIMEZONE")
	config.SeedData = v.GetBool("SEED_DATA")

	if config.SecretKey == defaultSecretKey && !config.Debug {
		log.Warn().Msg("SECRET_KEY is not set, using the development default")
	}

	log.Info().
		Str("port", config.Server.Port).
		Bool("debug", config.Debug).
		Bool("postgres", config.Database.URL != "").
		Bool("storage", config.Storage.Configured()).
		Int("accounts", len(config.Accounts)).
		Msg("Config loaded")
	return &config, nil
}

// parseAccounts merges the single DASHBOARD_USERNAME/PASSWORD pair with the
// comma separated "user:pass" list. Later entries win for the same username.
func parseAccounts(username, password, list string) []Credential {
	var accounts []Credential
	seen := map[string]int{}
	add := func(c Credential) {
		if i, ok := seen[c.Username]; ok {
			accounts[i] = c
			return
		}
		seen[c.Username] = len(accounts)
		accounts = append(accounts, c)
	}

	if username != "" && password != "" {
		add(Credential{Username: username, Password: password})
	}
	for _, entry := range splitList(list) {
		name, pass, ok := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if !ok || name == "" || pass == "" {
			log.Warn().Str("entry", name).Msg("Skipping malformed DASHBOARD_USERS entry")
			continue
		}
		add(Credential{Username: name, Password: pass})
	}
	return accounts
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

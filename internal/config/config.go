package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret string `yaml:"secret"`
		TTL    int    `yaml:"ttl"` // minutes
	} `yaml:"jwt"`

	Search struct {
		Host   string `yaml:"host"`
		APIKey string `yaml:"api_key"`
		Index  string `yaml:"index"` // worker documents index name
	} `yaml:"search"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Payments struct {
		StripeSecretKey     string `yaml:"stripe_secret_key"`
		StripeWebhookSecret string `yaml:"stripe_webhook_secret"`
		StripePriceID       string `yaml:"stripe_price_id"` // monthly employer plan
	} `yaml:"payments"`

	Cron struct {
		Secret string `yaml:"secret"` // bearer token for /cron endpoints
	} `yaml:"cron"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`        // local, s3, r2
		BasePath   string `yaml:"base_path"`   // For local storage
		BaseURL    string `yaml:"base_url"`    // Public URL base
		Bucket     string `yaml:"bucket"`      // For S3/R2
		Region     string `yaml:"region"`      // For S3
		AccessKey  string `yaml:"access_key"`  // For S3/R2
		SecretKey  string `yaml:"secret_key"`  // For S3/R2
		Endpoint   string `yaml:"endpoint"`    // For R2 or custom S3
		PublicRead bool   `yaml:"public_read"` // Make files public
	} `yaml:"storage"`

	Upload struct {
		MaxSize           int64    `yaml:"max_size"`            // bytes
		AllowedImageTypes []string `yaml:"allowed_image_types"` // MIME types
		AllowedDocTypes   []string `yaml:"allowed_doc_types"`   // MIME types
		URLExpiryMinutes  int      `yaml:"url_expiry_minutes"`  // signed URL default
	} `yaml:"upload"`

	SEO struct {
		SiteURL  string `yaml:"site_url"`
		SiteName string `yaml:"site_name"`
	} `yaml:"seo"`

	FirstAdminEmail    string `yaml:"first_admin_email"`
	FirstAdminPassword string `yaml:"first_admin_password"`
}

var AppConfig *Config

// LoadConfig reads config.yaml unless DATABASE_URL is present in the
// environment, in which case the whole config comes from env vars (the
// deployment and test path).
func LoadConfig() {
	var cfg Config

	dbURL := os.Getenv("DATABASE_URL")

	if dbURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = dbURL
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Port, _ = strconv.Atoi(os.Getenv("SERVER_PORT"))
	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTL = 60

	cfg.Search.Host = os.Getenv("SEARCH_HOST")
	cfg.Search.APIKey = os.Getenv("SEARCH_API_KEY")
	cfg.Search.Index = os.Getenv("SEARCH_INDEX")

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")

	cfg.Payments.StripeSecretKey = os.Getenv("STRIPE_SECRET_KEY")
	cfg.Payments.StripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	cfg.Payments.StripePriceID = os.Getenv("STRIPE_PRICE_ID")

	cfg.Cron.Secret = os.Getenv("CRON_SECRET")

	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = "./uploads"
	cfg.Storage.BaseURL = "/api/v1/files"

	cfg.FirstAdminEmail = os.Getenv("FIRST_ADMIN_EMAIL")
	cfg.FirstAdminPassword = os.Getenv("FIRST_ADMIN_PASSWORD")

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Search.Index == "" {
		cfg.Search.Index = "workers"
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if len(cfg.Upload.AllowedImageTypes) == 0 {
		cfg.Upload.AllowedImageTypes = []string{
			"image/jpeg", "image/png", "image/webp",
		}
	}
	if len(cfg.Upload.AllowedDocTypes) == 0 {
		cfg.Upload.AllowedDocTypes = []string{
			"image/jpeg", "image/png", "image/webp", "application/pdf",
		}
	}
	if cfg.Upload.URLExpiryMinutes == 0 {
		cfg.Upload.URLExpiryMinutes = 60
	}
	if cfg.SEO.SiteName == "" {
		cfg.SEO.SiteName = "Kasambahay"
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"billbook/internal/domain"
	"billbook/internal/invoice"
	"billbook/internal/logger"
)

// Store drivers.
const (
	DriverFile     = "file"
	DriverBolt     = "bolt"
	DriverPostgres = "postgres"
	DriverS3       = "s3"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	S3      S3Config
	Email   EmailConfig
	Log     LogConfig
	CORS    CORSConfig
	Tax     TaxConfig
	Company CompanyConfig
	Invoice InvoiceConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
	// SharesPerMinute limits invoice share requests; 0 disables the limit.
	SharesPerMinute float64 `mapstructure:"shares_per_minute"`
	ShareBurst      int     `mapstructure:"share_burst"`
}

// StoreConfig selects where the ledger document lives.
type StoreConfig struct {
	Driver     string `mapstructure:"driver"`
	FilePath   string `mapstructure:"file_path"`
	BoltPath   string `mapstructure:"bolt_path"`
	StorageKey string `mapstructure:"storage_key"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`

	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings. LedgerPrefix is used by the s3 store
// driver, ArchivePrefix by shared invoice PDFs.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	LedgerPrefix  string `mapstructure:"ledger_prefix"`
	ArchivePrefix string `mapstructure:"archive_prefix"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// Enabled reports whether a bucket is configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`

	// SMTP relay, used when Provider is "smtp".
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Logger converts the settings for logger.Setup.
func (l LogConfig) Logger() logger.LogConfig {
	out := logger.DefaultConfig()
	out.Level = l.Level
	out.Format = l.Format
	out.Output = l.Output
	if l.MaxSizeMB > 0 {
		out.MaxSizeMB = l.MaxSizeMB
	}
	if l.MaxBackups > 0 {
		out.MaxBackups = l.MaxBackups
	}
	if l.MaxAgeDays > 0 {
		out.MaxAgeDays = l.MaxAgeDays
	}
	return out
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TaxConfig holds the GST rates applied to every invoice, in percent.
type TaxConfig struct {
	CGSTRate float64 `mapstructure:"cgst_rate"`
	SGSTRate float64 `mapstructure:"sgst_rate"`
}

// Policy returns the rates as an invoice tax policy.
func (t TaxConfig) Policy() invoice.TaxPolicy {
	return invoice.NewTaxPolicy(t.CGSTRate, t.SGSTRate)
}

// CompanyConfig is the seller profile.
type CompanyConfig struct {
	Name            string `mapstructure:"name"`
	Address1        string `mapstructure:"address1"`
	Address2        string `mapstructure:"address2"`
	Address3        string `mapstructure:"address3"`
	Address4        string `mapstructure:"address4"`
	GSTIN           string `mapstructure:"gstin"`
	BankAccountName string `mapstructure:"bank_account_name"`
	BankName        string `mapstructure:"bank_name"`
	BankBranch      string `mapstructure:"bank_branch"`
	IFSC            string `mapstructure:"ifsc"`
	AccountNumber   string `mapstructure:"account_number"`
}

// Profile converts the config into the domain profile, dropping empty
// address lines.
func (c CompanyConfig) Profile() domain.Company {
	var lines []string
	for _, l := range []string{c.Address1, c.Address2, c.Address3, c.Address4} {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return domain.Company{
		Name:            c.Name,
		AddressLines:    lines,
		GSTIN:           c.GSTIN,
		BankAccountName: c.BankAccountName,
		BankName:        c.BankName,
		BankBranch:      c.BankBranch,
		IFSC:            c.IFSC,
		AccountNumber:   c.AccountNumber,
	}
}

// InvoiceConfig holds the fixed invoice wording.
type InvoiceConfig struct {
	Title           string `mapstructure:"title"`
	Jurisdiction    string `mapstructure:"jurisdiction"`
	DefaultItemCode string `mapstructure:"default_item_code"`
	DefaultHSN      string `mapstructure:"default_hsn"`
}

// Settings converts the config into document settings.
func (i InvoiceConfig) Settings() domain.InvoiceSettings {
	return domain.InvoiceSettings{
		Title:           i.Title,
		Jurisdiction:    i.Jurisdiction,
		DefaultItemCode: i.DefaultItemCode,
		DefaultHSN:      i.DefaultHSN,
	}
}

// Load reads configuration from environment variables with the BILLBOOK_
// prefix. A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("BILLBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.shares_per_minute", 10)
	v.SetDefault("server.share_burst", 5)

	// Store defaults
	v.SetDefault("store.driver", DriverFile)
	v.SetDefault("store.file_path", "data/ledger.json")
	v.SetDefault("store.bolt_path", "data/ledger.db")
	v.SetDefault("store.storage_key", "ksp_bottle_billing_v1")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "billbook")
	v.SetDefault("db.password", "billbook_secret")
	v.SetDefault("db.name", "billbook_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 5)
	v.SetDefault("db.max_idle", 2)
	v.SetDefault("db.conn_max_lifetime", "30m")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.ledger_prefix", "ledger")
	v.SetDefault("s3.archive_prefix", "invoices")
	v.SetDefault("s3.presign_expiry", 604800)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "billing@kspbottles.in")
	v.SetDefault("email.from_name", "KSP POLYMERS")
	v.SetDefault("email.smtp_port", 587)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	// Tax defaults
	v.SetDefault("tax.cgst_rate", 9)
	v.SetDefault("tax.sgst_rate", 9)

	// Company defaults
	v.SetDefault("company.name", "KSP POLYMERS")
	v.SetDefault("company.address1", "Plot No 233, Sy No: 682,693 to")
	v.SetDefault("company.address2", "697,699,701,702,704 to 709,711 to 717")
	v.SetDefault("company.address3", "TIF MSME Green Industrial Park, Dandu Malkapur(V)")
	v.SetDefault("company.address4", "Choutuppal (M), Yadadri(D), Telangana - 508252")
	v.SetDefault("company.gstin", "36BEUPC7238H1Z5")
	v.SetDefault("company.bank_account_name", "KSP POLYMERS")
	v.SetDefault("company.bank_name", "UNION BANK")
	v.SetDefault("company.bank_branch", "KOTHAPET")
	v.SetDefault("company.ifsc", "UBIN0810925")
	v.SetDefault("company.account_number", "0192110100000186")

	// Invoice defaults
	v.SetDefault("invoice.title", "TAX INVOICE")
	v.SetDefault("invoice.jurisdiction", "SUBJECT TO HYDERABAD JURISDICTION")
	v.SetDefault("invoice.default_item_code", "JB")
	v.SetDefault("invoice.default_hsn", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "BILLBOOK_SERVER_PORT",
		"server.read_timeout":       "BILLBOOK_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "BILLBOOK_SERVER_WRITE_TIMEOUT",
		"server.environment":        "BILLBOOK_SERVER_ENVIRONMENT",
		"server.shares_per_minute":  "BILLBOOK_SERVER_SHARES_PER_MINUTE",
		"server.share_burst":        "BILLBOOK_SERVER_SHARE_BURST",
		"store.driver":              "BILLBOOK_STORE_DRIVER",
		"store.file_path":           "BILLBOOK_STORE_FILE_PATH",
		"store.bolt_path":           "BILLBOOK_STORE_BOLT_PATH",
		"store.storage_key":         "BILLBOOK_STORE_STORAGE_KEY",
		"db.host":                   "BILLBOOK_DB_HOST",
		"db.port":                   "BILLBOOK_DB_PORT",
		"db.user":                   "BILLBOOK_DB_USER",
		"db.password":               "BILLBOOK_DB_PASSWORD",
		"db.name":                   "BILLBOOK_DB_NAME",
		"db.sslmode":                "BILLBOOK_DB_SSLMODE",
		"db.max_open":               "BILLBOOK_DB_MAX_OPEN",
		"db.max_idle":               "BILLBOOK_DB_MAX_IDLE",
		"db.conn_max_lifetime":      "BILLBOOK_DB_CONN_MAX_LIFETIME",
		"s3.region":                 "BILLBOOK_S3_REGION",
		"s3.bucket":                 "BILLBOOK_S3_BUCKET",
		"s3.endpoint":               "BILLBOOK_S3_ENDPOINT",
		"s3.access_key":             "BILLBOOK_S3_ACCESS_KEY",
		"s3.secret_key":             "BILLBOOK_S3_SECRET_KEY",
		"s3.ledger_prefix":          "BILLBOOK_S3_LEDGER_PREFIX",
		"s3.archive_prefix":         "BILLBOOK_S3_ARCHIVE_PREFIX",
		"s3.presign_expiry":         "BILLBOOK_S3_PRESIGN_EXPIRY",
		"email.provider":            "BILLBOOK_EMAIL_PROVIDER",
		"email.region":              "BILLBOOK_EMAIL_REGION",
		"email.from_address":        "BILLBOOK_EMAIL_FROM_ADDRESS",
		"email.from_name":           "BILLBOOK_EMAIL_FROM_NAME",
		"email.smtp_host":           "BILLBOOK_EMAIL_SMTP_HOST",
		"email.smtp_port":           "BILLBOOK_EMAIL_SMTP_PORT",
		"email.smtp_username":       "BILLBOOK_EMAIL_SMTP_USERNAME",
		"email.smtp_password":       "BILLBOOK_EMAIL_SMTP_PASSWORD",
		"log.level":                 "BILLBOOK_LOG_LEVEL",
		"log.format":                "BILLBOOK_LOG_FORMAT",
		"log.output":                "BILLBOOK_LOG_OUTPUT",
		"log.max_size_mb":           "BILLBOOK_LOG_MAX_SIZE_MB",
		"log.max_backups":           "BILLBOOK_LOG_MAX_BACKUPS",
		"log.max_age_days":          "BILLBOOK_LOG_MAX_AGE_DAYS",
		"cors.allowed_origins":      "BILLBOOK_CORS_ALLOWED_ORIGINS",
		"tax.cgst_rate":             "BILLBOOK_TAX_CGST_RATE",
		"tax.sgst_rate":             "BILLBOOK_TAX_SGST_RATE",
		"company.name":              "BILLBOOK_COMPANY_NAME",
		"company.address1":          "BILLBOOK_COMPANY_ADDRESS1",
		"company.address2":          "BILLBOOK_COMPANY_ADDRESS2",
		"company.address3":          "BILLBOOK_COMPANY_ADDRESS3",
		"company.address4":          "BILLBOOK_COMPANY_ADDRESS4",
		"company.gstin":             "BILLBOOK_COMPANY_GSTIN",
		"company.bank_account_name": "BILLBOOK_COMPANY_BANK_ACCOUNT_NAME",
		"company.bank_name":         "BILLBOOK_COMPANY_BANK_NAME",
		"company.bank_branch":       "BILLBOOK_COMPANY_BANK_BRANCH",
		"company.ifsc":              "BILLBOOK_COMPANY_IFSC",
		"company.account_number":    "BILLBOOK_COMPANY_ACCOUNT_NUMBER",
		"invoice.title":             "BILLBOOK_INVOICE_TITLE",
		"invoice.jurisdiction":      "BILLBOOK_INVOICE_JURISDICTION",
		"invoice.default_item_code": "BILLBOOK_INVOICE_DEFAULT_ITEM_CODE",
		"invoice.default_hsn":       "BILLBOOK_INVOICE_DEFAULT_HSN",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if BILLBOOK_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("BILLBOOK_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),

		SharesPerMinute: v.GetFloat64("server.shares_per_minute"),
		ShareBurst:      v.GetInt("server.share_burst"),
	}
	cfg.Store = StoreConfig{
		Driver:     strings.ToLower(strings.TrimSpace(v.GetString("store.driver"))),
		FilePath:   v.GetString("store.file_path"),
		BoltPath:   v.GetString("store.bolt_path"),
		StorageKey: v.GetString("store.storage_key"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),

		ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		LedgerPrefix:  v.GetString("s3.ledger_prefix"),
		ArchivePrefix: v.GetString("s3.archive_prefix"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),

		SMTPHost:     v.GetString("email.smtp_host"),
		SMTPPort:     v.GetInt("email.smtp_port"),
		SMTPUsername: v.GetString("email.smtp_username"),
		SMTPPassword: v.GetString("email.smtp_password"),
	}
	cfg.Log = LogConfig{
		Level:      v.GetString("log.level"),
		Format:     v.GetString("log.format"),
		Output:     v.GetString("log.output"),
		MaxSizeMB:  v.GetInt("log.max_size_mb"),
		MaxBackups: v.GetInt("log.max_backups"),
		MaxAgeDays: v.GetInt("log.max_age_days"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Tax = TaxConfig{
		CGSTRate: v.GetFloat64("tax.cgst_rate"),
		SGSTRate: v.GetFloat64("tax.sgst_rate"),
	}
	cfg.Company = CompanyConfig{
		Name:            v.GetString("company.name"),
		Address1:        v.GetString("company.address1"),
		Address2:        v.GetString("company.address2"),
		Address3:        v.GetString("company.address3"),
		Address4:        v.GetString("company.address4"),
		GSTIN:           v.GetString("company.gstin"),
		BankAccountName: v.GetString("company.bank_account_name"),
		BankName:        v.GetString("company.bank_name"),
		BankBranch:      v.GetString("company.bank_branch"),
		IFSC:            v.GetString("company.ifsc"),
		AccountNumber:   v.GetString("company.account_number"),
	}
	cfg.Invoice = InvoiceConfig{
		Title:           v.GetString("invoice.title"),
		Jurisdiction:    v.GetString("invoice.jurisdiction"),
		DefaultItemCode: v.GetString("invoice.default_item_code"),
		DefaultHSN:      v.GetString("invoice.default_hsn"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the store driver, tax rates and company profile.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverFile, DriverBolt, DriverPostgres:
	case DriverS3:
		if !c.S3.Enabled() {
			return fmt.Errorf("config: store driver %q requires BILLBOOK_S3_BUCKET", DriverS3)
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	if strings.TrimSpace(c.Store.StorageKey) == "" {
		return fmt.Errorf("config: storage key must not be empty")
	}
	if c.Tax.CGSTRate < 0 || c.Tax.SGSTRate < 0 {
		return fmt.Errorf("config: tax rates must not be negative")
	}
	if err := invoice.ValidateCompany(c.Company.Profile()); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

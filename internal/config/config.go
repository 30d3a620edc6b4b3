package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/redemly/redly/internal/common"
	"github.com/redemly/redly/internal/export"
)

// APIBaseURL returns the configured Redemly API base URL. The base URL is
// resolved once here so no command carries its own hardcoded host.
func APIBaseURL() (string, error) {
	base := viper.GetString("api.base_url")
	if base == "" {
		base = os.Getenv("REDEMLY_API_URL")
	}
	if base == "" {
		return "", common.NewUserError(
			"no Redemly API base URL configured; set api.base_url in the config file or REDEMLY_API_URL",
			common.ErrMissingConfig)
	}
	return base, nil
}

// DatabasePath returns the snapshot cache location.
func DatabasePath() string {
	if v := viper.GetString("storage.path"); v != "" {
		return ExpandPath(v)
	}
	return DefaultDatabasePath()
}

// PageSize returns the configured list page size.
func PageSize() int {
	if v := viper.GetInt("list.page_size"); v > 0 {
		return v
	}
	return 10
}

// ExportLimit returns the default maximum rows per export.
func ExportLimit() int {
	if v := viper.GetInt("export.limit"); v > 0 {
		return v
	}
	return 1000
}

// LoadSheetsConfig loads the Google Sheets configuration from Viper and
// environment variables. Precedence: config file, then GOOGLE_SHEETS_* env.
func LoadSheetsConfig() (*export.SheetsConfig, error) {
	cfg := export.DefaultSheetsConfig()

	if v := viper.GetString("sheets.service_account_path"); v != "" {
		cfg.ServiceAccountPath = ExpandPath(v)
	}
	if v := viper.GetString("sheets.client_id"); v != "" {
		cfg.ClientID = v
	}
	if v := viper.GetString("sheets.client_secret"); v != "" {
		cfg.ClientSecret = v
	}
	if v := viper.GetString("sheets.refresh_token"); v != "" {
		cfg.RefreshToken = v
	}
	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		cfg.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.spreadsheet_name"); v != "" {
		cfg.SpreadsheetName = v
	}

	if cfg.ServiceAccountPath == "" {
		if v := os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"); v != "" {
			cfg.ServiceAccountPath = ExpandPath(v)
		}
	}
	if cfg.ClientID == "" {
		cfg.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if cfg.ClientSecret == "" {
		cfg.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if cfg.RefreshToken == "" {
		cfg.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

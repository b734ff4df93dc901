package common

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/pta-tools/reimb-parser/constants"
)

// Config holds all application configuration.
type Config struct {
	Ledger  LedgerConfig  `mapstructure:"ledger"`
	Archive ArchiveConfig `mapstructure:"archive"`
	OCR     OCRConfig     `mapstructure:"ocr"`
	Review  ReviewConfig  `mapstructure:"review"`
}

// LedgerConfig locates the treasurer workbook rows are appended to.
type LedgerConfig struct {
	Path      string `mapstructure:"path"`
	SheetName string `mapstructure:"sheet_name"`
}

// ArchiveConfig controls local archival of processed attachments.
type ArchiveConfig struct {
	Dir string `mapstructure:"dir"`
}

// OCRConfig holds the external tool settings for text extraction.
type OCRConfig struct {
	Pdftotext     string `mapstructure:"pdftotext"`
	Pdftoppm      string `mapstructure:"pdftoppm"`
	Tesseract     string `mapstructure:"tesseract"`
	TesseractLang string `mapstructure:"tesseract_lang"`
	DPI           int    `mapstructure:"dpi"`
}

// ReviewConfig holds the pick lists offered during interactive review.
type ReviewConfig struct {
	PaymentTypes     []string `mapstructure:"payment_types"`
	BudgetCategories []string `mapstructure:"budget_categories"`
	BudgetItems      []string `mapstructure:"budget_items"`
}

// LoadConfig reads config.yaml (searched in . and $HOME/.reimb-parser, or the
// explicit path when given) plus REIMB_-prefixed environment variables. A
// missing config file is fine; defaults cover everything but the ledger path.
func LoadConfig(cfgFile string) (*Config, error) {
	viper.SetDefault("ledger.sheet_name", "Income and Expenses")
	viper.SetDefault("archive.dir", "./archive")
	viper.SetDefault("ocr.pdftotext", "pdftotext")
	viper.SetDefault("ocr.pdftoppm", "pdftoppm")
	viper.SetDefault("ocr.tesseract", "tesseract")
	viper.SetDefault("ocr.tesseract_lang", "eng")
	viper.SetDefault("ocr.dpi", 300)
	viper.SetDefault("review.payment_types", constants.PaymentTypes)

	viper.SetEnvPrefix("REIMB")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.reimb-parser")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

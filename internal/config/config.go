package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Gemini   GeminiConfig   `mapstructure:"gemini"`
	OCR      OCRConfig      `mapstructure:"ocr"`
	Practice PracticeConfig `mapstructure:"practice"`
	Speech   SpeechConfig   `mapstructure:"speech"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Outputs  OutputsConfig  `mapstructure:"outputs"`
}

type DatabaseConfig struct {
	Driver          string            `mapstructure:"driver" validate:"oneof=sqlite3 mysql postgres"`
	Path            string            `mapstructure:"path" validate:"required_if=Driver sqlite3"`
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port" validate:"gte=0,lte=65535"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds" validate:"gte=0"`
}

type OpenAIConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	RetryAttempts uint   `mapstructure:"retry_attempts" validate:"lte=10"`
}

type GeminiConfig struct {
	APIKey        string `mapstructure:"api_key"`
	Model         string `mapstructure:"model"`
	RetryAttempts uint   `mapstructure:"retry_attempts" validate:"lte=10"`
}

type OCRConfig struct {
	TesseractCommand       string  `mapstructure:"tesseract_command" validate:"required"`
	LowConfidenceThreshold float64 `mapstructure:"low_confidence_threshold" validate:"gte=0,lte=100"`
}

type PracticeConfig struct {
	DefaultMode      string `mapstructure:"default_mode" validate:"practice_mode"`
	DefaultDirection string `mapstructure:"default_direction" validate:"direction"`
	// TypingRetype asks for the correct answer to be typed after a miss.
	TypingRetype  bool `mapstructure:"typing_retype"`
	RetryAttempts uint `mapstructure:"retry_attempts" validate:"lte=10"`
}

type SpeechConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Command string `mapstructure:"command" validate:"required_if=Enabled true"`
}

type ReminderConfig struct {
	Every string `mapstructure:"every" validate:"required"`
}

type OutputsConfig struct {
	PDFDirectory    string `mapstructure:"pdf_directory"`
	ExportDirectory string `mapstructure:"export_directory"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/examiner")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// Variables already set in the environment win over the .env file
	if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
	}

	v.SetDefault("database.driver", "sqlite3")
	v.SetDefault("database.path", filepath.Join("data", "examiner.db"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.database", "examiner")
	v.SetDefault("database.username", "examiner")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.retry_attempts", 3)
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("gemini.retry_attempts", 3)
	v.SetDefault("ocr.tesseract_command", "tesseract")
	v.SetDefault("ocr.low_confidence_threshold", 60)
	v.SetDefault("practice.default_mode", "flashcard")
	v.SetDefault("practice.default_direction", "a-to-b")
	v.SetDefault("practice.typing_retype", true)
	v.SetDefault("practice.retry_attempts", 2)
	v.SetDefault("speech.enabled", false)
	v.SetDefault("speech.command", "espeak-ng")
	v.SetDefault("reminder.every", "1h")
	v.SetDefault("outputs.pdf_directory", filepath.Join("outputs", "pdf"))
	v.SetDefault("outputs.export_directory", filepath.Join("outputs", "sets"))

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind GEMINI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "EXAMINER_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind EXAMINER_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

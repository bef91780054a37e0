package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const AccountKeyEnvVar = "STORAGE_ACCOUNT_KEY"

var (
	ErrCredentialMissing = fmt.Errorf("the environment variable %v does not exist. You can create it with this command: export %v=$(az storage account keys list -n your_storage_account_name --query [0].value -o tsv)", AccountKeyEnvVar, AccountKeyEnvVar)
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// Config is built once at startup and not modified afterwards.
type Config struct {
	AccountName    string `validate:"required"`
	AccountKey     string
	AccountId      string
	Endpoint       string `validate:"omitempty,url"`
	DisplayLB      bool
	DisplayAllowed bool
	Direction      string `validate:"oneof=in out both"`
	LookbackCount  int    `validate:"min=1"`
	Verbose        bool
	SkipMalformed  bool
	Output         string `validate:"oneof=text table"`
	Quiet          bool
	File           string
	Overwrite      bool
}

type environment struct {
	AccountKey string `koanf:"storage_account_key"`
}

// Load fills in the account key from the environment (or a .env file in the
// working directory) and validates the result. A missing key is only
// accepted when an account resource id is given to look it up with.
func Load(cfg Config) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	e, err := loadEnvironment()
	if err != nil {
		return nil, err
	}

	if cfg.AccountKey == "" {
		cfg.AccountKey = e.AccountKey
	}

	if cfg.AccountKey == "" && cfg.AccountId == "" {
		return nil, ErrCredentialMissing
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, describe(err))
	}

	return &cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %v: %w", path, err)
	}
	return nil
}

func loadEnvironment() (*environment, error) {
	k := koanf.New(".")
	err := k.Load(env.Provider("STORAGE_", ".", strings.ToLower), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var e environment
	if err := k.Unmarshal("", &e); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	return &e, nil
}

var flagNames = map[string]string{
	"AccountName":   "--accountName",
	"Endpoint":      "--endpoint",
	"Direction":     "--displayDirection",
	"LookbackCount": "--displayHours",
	"Output":        "--output",
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		name, ok := flagNames[fe.Field()]
		if !ok {
			name = fe.Field()
		}

		switch fe.Tag() {
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%v must be one of: %v (got '%v')", name, fe.Param(), fe.Value()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%v must be at least %v (got %v)", name, fe.Param(), fe.Value()))
		case "required":
			msgs = append(msgs, fmt.Sprintf("%v is required", name))
		default:
			msgs = append(msgs, fmt.Sprintf("%v is not a valid %v (got '%v')", name, fe.Tag(), fe.Value()))
		}
	}

	return strings.Join(msgs, "; ")
}

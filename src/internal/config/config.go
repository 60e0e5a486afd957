package config

import (
	"os"
	"path/filepath"
	"strings"
)

const defaultRulesFile = "incentives.toml"
const defaultMetricsAddr = ":9464"
const defaultCurrencyCode = "NGN"

type Config struct {
	RulesFile    string
	MetricsAddr  string
	CurrencyCode string
}

func Load() (Config, error) {
	rulesFile := strings.TrimSpace(os.Getenv("LEDGER_RULES_FILE"))
	if rulesFile == "" {
		rulesFile = filepath.Join("config", defaultRulesFile)
	}

	metricsAddr := strings.TrimSpace(os.Getenv("LEDGER_METRICS_ADDR"))
	if metricsAddr == "" {
		metricsAddr = defaultMetricsAddr
	}

	currencyCode := strings.ToUpper(strings.TrimSpace(os.Getenv("LEDGER_CURRENCY_CODE")))
	if currencyCode == "" {
		currencyCode = defaultCurrencyCode
	}

	return Config{
		RulesFile:    rulesFile,
		MetricsAddr:  metricsAddr,
		CurrencyCode: currencyCode,
	}, nil
}

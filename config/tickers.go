package config

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Fixed fetch and refresh parameters. None of these are adjustable at runtime.
const (
	FetchRange      = "5d" // lookback window
	FetchInterval   = "1h" // sampling interval
	RefreshInterval = 30 * time.Second
)

//go:embed tickers.yaml
var tickersYAML []byte

type tickersFile struct {
	Tickers []struct {
		Symbol string `yaml:"symbol"`
	} `yaml:"tickers"`
}

// Tickers is the ordered list of symbols the dashboard offers.
// It is parsed from the embedded tickers.yaml at package init.
var Tickers = mustParseTickers(tickersYAML)

// DefaultTicker returns the symbol selected when a dashboard session starts.
func DefaultTicker() string {
	return Tickers[0]
}

// parseTickers normalizes symbols to upper case and drops blanks and duplicates,
// keeping the first occurrence order.
func parseTickers(b []byte) ([]string, error) {
	var tf tickersFile
	if err := yaml.Unmarshal(b, &tf); err != nil {
		return nil, fmt.Errorf("parse tickers: %w", err)
	}

	seen := make(map[string]struct{}, len(tf.Tickers))
	out := make([]string, 0, len(tf.Tickers))
	for _, it := range tf.Tickers {
		s := strings.ToUpper(strings.TrimSpace(it.Symbol))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no tickers found")
	}
	return out, nil
}

func mustParseTickers(b []byte) []string {
	out, err := parseTickers(b)
	if err != nil {
		panic(err)
	}
	return out
}

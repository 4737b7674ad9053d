// Command staticlint is the repository's static analysis binary. It runs a
// fixed set of Go toolchain passes, ineffassign, nilerr, the project noexit
// analyzer and the staticcheck analyzers listed in config.json.
//
// The check list is embedded at build time; a config.json placed next to the
// executable takes precedence.
package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unusedresult"

	"github.com/gordonklaus/ineffassign/pkg/ineffassign"
	"github.com/gostaticanalysis/nilerr"
	"honnef.co/go/tools/staticcheck"

	"github.com/patric-chuzhbe/usersroundtrip/cmd/staticlint/noexit"
)

const configFileName = "config.json"

//go:embed config.json
var embeddedConfig []byte

// ConfigData describes config.json. Staticcheck lists enabled analyzer names such as "SA4006".
type ConfigData struct {
	Staticcheck []string
}

func loadConfig() (ConfigData, error) {
	var cfg ConfigData

	data := embeddedConfig
	if executable, err := os.Executable(); err == nil {
		override, err := os.ReadFile(filepath.Join(filepath.Dir(executable), configFileName))
		if err == nil {
			data = override
		}
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing %s: %w", configFileName, err)
	}

	return cfg, nil
}

func analyzers(cfg ConfigData) []*analysis.Analyzer {
	checks := []*analysis.Analyzer{
		copylock.Analyzer,
		errorsas.Analyzer,
		lostcancel.Analyzer,
		printf.Analyzer,
		structtag.Analyzer,
		unmarshal.Analyzer,
		unusedresult.Analyzer,

		ineffassign.Analyzer,
		nilerr.Analyzer,

		noexit.Analyzer,
	}

	enabled := make(map[string]bool, len(cfg.Staticcheck))
	for _, name := range cfg.Staticcheck {
		enabled[name] = true
	}

	for _, v := range staticcheck.Analyzers {
		if enabled[v.Analyzer.Name] {
			checks = append(checks, v.Analyzer)
		}
	}

	return checks
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	multichecker.Main(analyzers(cfg)...)
}

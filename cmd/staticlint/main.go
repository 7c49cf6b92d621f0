// Command staticlint runs the project's static analysis: a set of analyzers
// from golang.org/x/tools, ineffassign, nilerr, the selected staticcheck
// analyzers and the project's own noexit analyzer, in one multichecker.
//
// The staticcheck analyzers to enable are listed in config.json next to the
// binary:
//
//	{"Staticcheck": ["SA1000", "SA4006"]}
//
// Without the file every SA analyzer is enabled.
//
// Usage:
//
//	staticlint ./...
package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gordonklaus/ineffassign/pkg/ineffassign"
	"github.com/gostaticanalysis/nilerr"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/loopclosure"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unmarshal"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/staticcheck"

	"github.com/patric-chuzhbe/mobileappws/cmd/staticlint/noexit"
)

// Config is the name of the file listing the enabled staticcheck analyzers.
const Config = `config.json`

// ConfigData describes the structure of the configuration file.
type ConfigData struct {
	Staticcheck []string
}

func loadConfig() (*ConfigData, error) {
	appfile, err := os.Executable()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(filepath.Dir(appfile), Config))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg ConfigData
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func analyzers(cfg *ConfigData) []*analysis.Analyzer {
	myChecks := []*analysis.Analyzer{
		copylock.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		loopclosure.Analyzer,
		lostcancel.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		unmarshal.Analyzer,
		unreachable.Analyzer,

		ineffassign.Analyzer,
		nilerr.Analyzer,

		noexit.Analyzer,
	}

	enabled := map[string]bool{}
	if cfg != nil {
		for _, name := range cfg.Staticcheck {
			enabled[name] = true
		}
	}

	for _, v := range staticcheck.Analyzers {
		if (cfg == nil && strings.HasPrefix(v.Analyzer.Name, "SA")) || enabled[v.Analyzer.Name] {
			myChecks = append(myChecks, v.Analyzer)
		}
	}

	return myChecks
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		panic(err)
	}

	multichecker.Main(analyzers(cfg)...)
}

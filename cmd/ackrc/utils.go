package ackrc

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"golang.org/x/term"

	"github.com/varalys/ackrc/internal/config"
	"github.com/varalys/ackrc/internal/discovery"
	"github.com/varalys/ackrc/internal/logging"
	"github.com/varalys/ackrc/internal/platform"
	"github.com/varalys/ackrc/internal/report"
)

// loadSettings reads the global settings file. A missing file is not an error.
func loadSettings() (config.FileConfig, error) {
	fc, err := config.LoadGlobal()
	if err == nil {
		return fc, nil
	}
	if errors.Is(err, config.ErrNoGlobalConfig) || config.GlobalPath() == "" {
		return config.FileConfig{}, nil
	}
	return config.FileConfig{}, err
}

func newLogger(w io.Writer, fc config.FileConfig) (*slog.Logger, error) {
	name := pickString(flagLogLevel, fc.LogLevel)
	if flagDebug {
		name = "debug"
	}
	cfg := logging.DefaultConfig()
	cfg.Output = w
	if name != "" {
		lvl, err := logging.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		cfg.Level = lvl
	}
	return logging.New(cfg), nil
}

func selectPlatform(fc config.FileConfig) platform.Platform {
	name := pickString(flagName, fc.Name)
	if sys := pickString(flagSystemPath, fc.SystemPath); sys != "" && runtime.GOOS != "windows" {
		return platform.Unix(sys)
	}
	return platform.Detect(name)
}

// discover runs discovery and dedup with flags layered over settings.
func discover(log *slog.Logger, fc config.FileConfig) ([]discovery.FileRef, error) {
	f := discovery.New(discovery.Options{
		Platform: selectPlatform(fc),
		Name:     pickString(flagName, fc.Name),
		EnvVar:   pickString(flagEnvVar, fc.EnvVar),
		Cwd:      flagDir,
		NoEnv:    flagNoEnv,
		Explicit: flagAckrc,
		Logger:   log,
	})
	refs, err := f.Discover()
	if err != nil {
		return nil, err
	}
	return excludeRefs(refs, append(append([]string{}, fc.Exclude...), flagExclude...))
}

// excludeRefs drops refs whose path matches any pattern.
func excludeRefs(refs []discovery.FileRef, patterns []string) ([]discovery.FileRef, error) {
	if len(patterns) == 0 {
		return refs, nil
	}
	for _, p := range patterns {
		if !doublestar.ValidatePathPattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	out := refs[:0:0]
	for _, r := range refs {
		excluded := false
		for _, p := range patterns {
			if ok, _ := doublestar.PathMatch(p, r.Path); ok {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, r)
		}
	}
	return out, nil
}

func printOptions(w io.Writer, fc config.FileConfig) (report.PrintOptions, error) {
	format, err := report.ParseFormat(pickString(flagFormat, fc.Format))
	if err != nil {
		return report.PrintOptions{}, err
	}
	return report.PrintOptions{
		Format:  format,
		NoColor: pickBool(flagNoColor, fc.NoColor) || !isTerminal(w),
	}, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func pickString(cli string, file *string) string {
	if cli != "" {
		return cli
	}
	if file != nil && *file != "" {
		return *file
	}
	return ""
}

func pickBool(cli bool, file *bool) bool {
	if cli {
		return true
	}
	if file != nil {
		return *file
	}
	return false
}

// session bundles what every subcommand needs before it runs.
type session struct {
	settings config.FileConfig
	log      *slog.Logger
	print    report.PrintOptions
}

func newSession(out, errOut io.Writer) (*session, error) {
	fc, err := loadSettings()
	if err != nil {
		return nil, err
	}
	log, err := newLogger(errOut, fc)
	if err != nil {
		return nil, err
	}
	opts, err := printOptions(out, fc)
	if err != nil {
		return nil, err
	}
	return &session{settings: fc, log: log, print: opts}, nil
}

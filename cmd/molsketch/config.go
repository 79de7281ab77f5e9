package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Config holds the command configuration.
type Config struct {
	Input       string
	Output      string
	Format      string
	Width       int
	Height      int
	BondLength  float64
	FontSize    float64
	RingClosure bool
	Fit         bool
	Padding     float64
	LogLevel    slog.Level
}

// configResolver defines how to resolve a single configuration value.
// Precedence is flag, then environment variable, then default.
type configResolver struct {
	flagName    string
	envVarName  string
	defaultVal  string
	description string
	setter      func(*Config, string) error
}

var resolvers = []configResolver{
	{
		flagName:    "input",
		envVarName:  "MOLSKETCH_INPUT",
		defaultVal:  "-",
		description: "molecule description file (.json, .yaml); - reads JSON from stdin",
		setter:      func(c *Config, v string) error { c.Input = v; return nil },
	},
	{
		flagName:    "output",
		envVarName:  "MOLSKETCH_OUTPUT",
		defaultVal:  "-",
		description: "output file; - writes to stdout",
		setter:      func(c *Config, v string) error { c.Output = v; return nil },
	},
	{
		flagName:    "format",
		envVarName:  "MOLSKETCH_FORMAT",
		defaultVal:  "png",
		description: "output backend: png, svg, chrome-png, chrome-jpeg",
		setter:      func(c *Config, v string) error { c.Format = strings.ToLower(v); return nil },
	},
	{
		flagName:    "width",
		envVarName:  "MOLSKETCH_WIDTH",
		defaultVal:  "480",
		description: "canvas width in pixels",
		setter:      intSetter("width", func(c *Config, n int) { c.Width = n }),
	},
	{
		flagName:    "height",
		envVarName:  "MOLSKETCH_HEIGHT",
		defaultVal:  "360",
		description: "canvas height in pixels",
		setter:      intSetter("height", func(c *Config, n int) { c.Height = n }),
	},
	{
		flagName:    "bond-length",
		envVarName:  "MOLSKETCH_BOND_LENGTH",
		defaultVal:  "40",
		description: "bond length in pixels",
		setter:      floatSetter("bond-length", func(c *Config, f float64) { c.BondLength = f }),
	},
	{
		flagName:    "font-size",
		envVarName:  "MOLSKETCH_FONT_SIZE",
		defaultVal:  "23",
		description: "label font size in pixels",
		setter:      floatSetter("font-size", func(c *Config, f float64) { c.FontSize = f }),
	},
	{
		flagName:    "ring-closure",
		envVarName:  "MOLSKETCH_RING_CLOSURE",
		defaultVal:  "true",
		description: "draw the bond closing a ring",
		setter:      boolSetter(func(c *Config, b bool) { c.RingClosure = b }),
	},
	{
		flagName:    "fit",
		envVarName:  "MOLSKETCH_FIT",
		defaultVal:  "false",
		description: "crop the canvas to the drawing",
		setter:      boolSetter(func(c *Config, b bool) { c.Fit = b }),
	},
	{
		flagName:    "padding",
		envVarName:  "MOLSKETCH_PADDING",
		defaultVal:  "12",
		description: "margin kept around the drawing when fitting",
		setter:      floatSetter("padding", func(c *Config, f float64) { c.Padding = f }),
	},
	{
		flagName:    "log-level",
		envVarName:  "MOLSKETCH_LOG_LEVEL",
		defaultVal:  "warn",
		description: "log level: debug, info, warn, error",
		setter: func(c *Config, v string) error {
			return c.LogLevel.UnmarshalText([]byte(v))
		},
	},
}

// loadConfig resolves the configuration from command-line arguments and
// the environment.
func loadConfig(fs *flag.FlagSet, args []string, getenv func(string) string) (Config, error) {
	var cfg Config

	flagVars := make(map[string]*string, len(resolvers))
	for _, r := range resolvers {
		flagVars[r.flagName] = fs.String(r.flagName, "", r.description)
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	for _, r := range resolvers {
		value := r.defaultVal
		if v := *flagVars[r.flagName]; v != "" {
			value = v
		} else if v := getenv(r.envVarName); v != "" {
			value = v
		}
		if err := r.setter(&cfg, value); err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", r.flagName, value, err)
		}
	}
	return cfg, nil
}

func intSetter(name string, set func(*Config, int)) func(*Config, string) error {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		set(c, n)
		return nil
	}
}

func floatSetter(name string, set func(*Config, float64)) func(*Config, string) error {
	return func(c *Config, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		if f < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
		set(c, f)
		return nil
	}
}

func boolSetter(set func(*Config, bool)) func(*Config, string) error {
	return func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		set(c, b)
		return nil
	}
}

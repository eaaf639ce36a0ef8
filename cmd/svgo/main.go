package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/svgo"
	"github.com/tdewolff/svgo/plugins"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Optimize struct {
	Inputs       []string `index:"*" desc:"Input files or directories, leave blank to use stdin"`
	String       string   `short:"s" desc:"Input SVG data string"`
	Output       string   `short:"o" desc:"Output file or directory, defaults to overwriting the input or stdout"`
	Config       string   `desc:"YAML configuration file"`
	Multipass    bool     `desc:"Optimize until the output no longer shrinks"`
	Precision    int      `short:"p" default:"-1" desc:"Number of decimals, overrides the plugin settings"`
	Pretty       bool     `desc:"Pretty print the output"`
	Indent       int      `default:"4" desc:"Number of spaces to indent with when pretty printing"`
	EOL          string   `desc:"Line ending, lf or crlf"`
	FinalNewline bool     `desc:"Ensure a final newline"`
	DataURI      string   `desc:"Output as data URI: base64, enc or unenc"`
	Disable      string   `desc:"Comma separated plugins to disable"`
	Enable       string   `desc:"Comma separated plugins to enable"`
	Recursive    bool     `short:"r" desc:"Recursively optimize directories"`
	ShowPlugins  bool     `desc:"Show available plugins and exit"`
	Jobs         int      `short:"j" desc:"Number of files optimized in parallel, defaults to the number of CPUs"`
	Quiet        bool     `short:"q" desc:"Only output errors"`
	Verbose      bool     `short:"v" desc:"Verbose logging"`
	LogFile      string   `desc:"Also write logs to a rotated file"`
}

func main() {
	root := argp.NewCmd(&Optimize{}, "SVG optimizer")
	root.Parse()
	root.PrintHelp()
}

type job struct {
	input  string // empty for stdin or --string
	output string // empty for stdout
}

func (cmd *Optimize) Run() error {
	if cmd.ShowPlugins {
		for _, name := range plugins.Builtin.Names() {
			p, _ := plugins.Builtin.Get(name)
			fmt.Printf("  [ %s ] %s\n", name, p.Description)
		}
		return nil
	}

	logger, err := newLogger(cmd.Verbose, cmd.Quiet, cmd.LogFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	config, err := cmd.loadConfig()
	if err != nil {
		return err
	}
	config.Logger = logger

	jobs, err := cmd.jobs()
	if err != nil {
		return err
	}

	n := cmd.Jobs
	if n <= 0 {
		n = runtime.NumCPU()
	}
	var mu sync.Mutex
	g := errgroup.Group{}
	g.SetLimit(n)
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			start := time.Now()
			before, after, err := cmd.optimize(j, config)
			if err != nil {
				if j.input != "" {
					return fmt.Errorf("%s: %w", j.input, err)
				}
				return err
			}
			if !cmd.Quiet && j.output != "" {
				mu.Lock()
				defer mu.Unlock()
				fmt.Fprintf(os.Stderr, "%s:\nDone in %d ms!\n%s\n", j.input, time.Since(start).Milliseconds(), savings(before, after))
			}
			return nil
		})
	}
	return g.Wait()
}

// loadConfig reads the configuration file and applies the command line options on top.
func (cmd *Optimize) loadConfig() (*svgo.Config, error) {
	var config *svgo.Config
	if cmd.Config != "" {
		f, err := os.Open(cmd.Config)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if config, err = svgo.LoadConfig(f); err != nil {
			return nil, err
		}
	} else {
		config = svgo.DefaultConfig()
		opts := svgo.DefaultStringifyOptions()
		config.JS2SVG = &opts
	}

	if cmd.Multipass {
		config.Multipass = true
	}
	if 0 <= cmd.Precision {
		precision := cmd.Precision
		config.FloatPrecision = &precision
	}
	if cmd.Pretty {
		config.JS2SVG.Pretty = true
		config.JS2SVG.Indent = cmd.Indent
	}
	if cmd.EOL != "" {
		if cmd.EOL != "lf" && cmd.EOL != "crlf" {
			return nil, fmt.Errorf("unknown line ending %q", cmd.EOL)
		}
		config.JS2SVG.EOL = cmd.EOL
	}
	if cmd.FinalNewline {
		config.JS2SVG.FinalNewline = true
	}
	if cmd.DataURI != "" {
		config.DataURI = cmd.DataURI
	}
	if err := applyDisable(config, splitNames(cmd.Disable)); err != nil {
		return nil, err
	}
	for _, name := range splitNames(cmd.Enable) {
		if _, ok := plugins.Builtin.Get(name); !ok {
			return nil, &svgo.UnknownPluginError{Name: name}
		}
		config.Plugins = append(config.Plugins, svgo.PluginConfig{Name: name})
	}
	return config, nil
}

func splitNames(s string) []string {
	names := []string{}
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// applyDisable removes the plugins from the list, or disables them through the overrides of the presets that run them.
func applyDisable(config *svgo.Config, names []string) error {
	for _, name := range names {
		if _, ok := plugins.Builtin.Get(name); !ok {
			return &svgo.UnknownPluginError{Name: name}
		}
		pcs := config.Plugins[:0]
		for _, pc := range config.Plugins {
			if pc.Name == name {
				continue
			}
			if p, ok := plugins.Builtin.Get(pc.Name); ok && p.IsPreset() {
				if pc.Params == nil {
					pc.Params = svgo.Params{}
				}
				overrides := pc.Params.Map("overrides")
				if overrides == nil {
					overrides = map[string]any{}
				}
				overrides[name] = false
				pc.Params["overrides"] = overrides
			}
			pcs = append(pcs, pc)
		}
		config.Plugins = pcs
	}
	return nil
}

// jobs lists the documents to optimize and where to write them.
func (cmd *Optimize) jobs() ([]job, error) {
	output := cmd.Output
	if output == "-" {
		output = ""
	}
	if cmd.String != "" || len(cmd.Inputs) == 0 {
		return []job{{output: output}}, nil
	}

	outputDir := false
	if info, err := os.Stat(output); err == nil && info.IsDir() || 1 < len(cmd.Inputs) && output != "" {
		outputDir = true
	}

	jobs := []job{}
	for _, input := range cmd.Inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, err
		} else if !info.IsDir() {
			j := job{input: input, output: input}
			if outputDir {
				j.output = filepath.Join(output, filepath.Base(input))
			} else if cmd.Output != "" {
				j.output = output
			}
			jobs = append(jobs, j)
			continue
		}

		err = filepath.WalkDir(input, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			} else if d.IsDir() {
				if path != input && !cmd.Recursive {
					return filepath.SkipDir
				}
				return nil
			} else if strings.ToLower(filepath.Ext(path)) != ".svg" {
				return nil
			}
			j := job{input: path, output: path}
			if cmd.Output != "" {
				rel, err := filepath.Rel(input, path)
				if err != nil {
					return err
				}
				j.output = filepath.Join(cmd.Output, rel)
			}
			jobs = append(jobs, j)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

func (cmd *Optimize) optimize(j job, config *svgo.Config) (int, int, error) {
	var data []byte
	var err error
	if j.input != "" {
		data, err = os.ReadFile(j.input)
	} else if cmd.String != "" {
		data = []byte(cmd.String)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return 0, 0, err
	}
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("data:")) {
		if data, err = svgo.DecodeDataURI(bytes.TrimSpace(data)); err != nil {
			return 0, 0, err
		}
	}

	c := *config
	c.Path = j.input
	result, err := svgo.Optimize(data, plugins.Builtin, &c)
	if err != nil {
		return 0, 0, err
	}

	if j.output == "" {
		_, err = io.WriteString(os.Stdout, result.Data)
	} else {
		if err = os.MkdirAll(filepath.Dir(j.output), 0755); err != nil {
			return 0, 0, err
		}
		err = os.WriteFile(j.output, []byte(result.Data), 0644)
	}
	return len(data), len(result.Data), err
}

func savings(before, after int) string {
	percent := 0.0
	if before != 0 {
		percent = 100.0 * float64(before-after) / float64(before)
	}
	return fmt.Sprintf("%.3f KiB - %.1f%% = %.3f KiB", float64(before)/1024.0, percent, float64(after)/1024.0)
}

// newLogger writes human readable logs to stderr and, when logFile is set, JSON logs to a rotated file.
func newLogger(verbose, quiet bool, logFile string) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	} else if quiet {
		level.SetLevel(zap.ErrorLevel)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stderr), level),
	}
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, err
		}
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 3,
		})
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), fileWriter, level))
	}
	return zap.New(zapcore.NewTee(cores...)).Named("svgo"), nil
}

package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/danmuck/chatwire/internal/irc"
	"github.com/danmuck/chatwire/internal/observability"
)

const serviceName = "wirectl"

type options struct {
	in         string
	configPath string
	strict     bool
	pretty     bool
	nick       bool
	caps       bool
	debug      bool
}

// parsedLine is one line of tool output: the structured message plus the
// optionally annotated source nickname.
type parsedLine struct {
	irc.Message
	SourceNick *string `json:"source_nick,omitempty"`
}

func main() {
	var opts options
	flag.StringVar(&opts.in, "in", "", "read raw lines from this file instead of stdin")
	flag.StringVar(&opts.configPath, "config", "", "toml config file")
	flag.BoolVar(&opts.strict, "strict", false, "exit on the first malformed line")
	flag.BoolVar(&opts.pretty, "pretty", false, "indent JSON output")
	flag.BoolVar(&opts.nick, "nick", true, "annotate output with the extracted source nickname")
	flag.BoolVar(&opts.caps, "caps", false, "print the supported capability wire strings and exit")
	flag.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flag.Parse()

	logger := observability.InitLogger(serviceName, opts.debug)

	if opts.caps {
		for _, c := range irc.Capabilities() {
			fmt.Println(c)
		}
		return
	}

	cfg := defaultConfig()
	if opts.configPath != "" {
		loaded, err := loadConfig(opts.configPath)
		if err != nil {
			logger.Fatal().Err(err).Str("path", opts.configPath).Msg("config load failed")
		}
		cfg = loaded
	}
	// Explicit flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strict":
			cfg.Strict = opts.strict
		case "pretty":
			cfg.Pretty = opts.pretty
		case "nick":
			cfg.AnnotateNick = opts.nick
		}
	})

	input := io.Reader(os.Stdin)
	if opts.in != "" {
		f, err := os.Open(opts.in)
		if err != nil {
			logger.Fatal().Err(err).Str("path", opts.in).Msg("open input")
		}
		defer f.Close()
		input = f
	}

	if err := run(input, os.Stdout, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("aborted")
	}
}

func run(in io.Reader, out io.Writer, cfg Config, logger zerolog.Logger) error {
	enc := json.NewEncoder(out)
	if cfg.Pretty {
		enc.SetIndent("", "  ")
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		raw := strings.TrimRight(scanner.Text(), "\r")
		if raw == "" {
			continue
		}

		msg, err := irc.Parse(raw + "\r\n")
		if err != nil {
			observability.RecordParse(serviceName, parseResult(err))
			if cfg.Strict {
				return fmt.Errorf("line %d: %w", lineno, err)
			}
			logger.Warn().Err(err).Int("line", lineno).Str("raw", raw).Msg("dropped malformed line")
			continue
		}
		observability.RecordParse(serviceName, "ok")

		output := parsedLine{Message: msg}
		if cfg.AnnotateNick {
			if nick, ok := msg.SourceNickname(); ok {
				output.SourceNick = &nick
			}
		}
		if err := enc.Encode(output); err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		logger.Debug().Str("command", msg.Command).Int("args", len(msg.Args)).Msg("parsed line")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func parseResult(err error) string {
	switch {
	case errors.Is(err, irc.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, irc.ErrMissingCommand):
		return "missing_command"
	default:
		return "error"
	}
}

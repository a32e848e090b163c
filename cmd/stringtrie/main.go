package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/kumarlokesh/stringtrie/internal/api"
	"github.com/kumarlokesh/stringtrie/internal/config"
	"github.com/kumarlokesh/stringtrie/internal/dict"
)

func main() {
	configPath := pflag.String("config", "", "path to config file")
	dictFile := pflag.String("dict", "", "word list file (overrides config)")
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Usage = showHelp
	pflag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	if *dictFile != "" {
		cfg.Dictionary.File = *dictFile
	}

	level, _ := zerolog.ParseLevel(cfg.Log.Level)
	if *debug {
		level = zerolog.DebugLevel
	}
	logger = logger.Level(level)

	if pflag.NArg() == 0 {
		showHelp()
		os.Exit(1)
	}

	args := pflag.Args()
	command := args[0]
	commandArgs := args[1:]

	d := dict.New(logger)
	if cfg.Dictionary.File != "" {
		if _, err := d.LoadFile(cfg.Dictionary.File); err != nil {
			logger.Fatal().Err(err).Str("path", cfg.Dictionary.File).Msg("failed to load dictionary")
		}
	}

	switch command {
	case "load":
		runLoad(d, commandArgs, logger)
	case "add":
		runAdd(d, cfg, commandArgs, logger)
	case "remove":
		runRemove(d, cfg, commandArgs, logger)
	case "search":
		runSearch(d, commandArgs, logger)
	case "prefix":
		runPrefix(d, commandArgs, logger)
	case "words":
		runWords(d, logger)
	case "save":
		runSave(d, commandArgs, logger)
	case "count":
		fmt.Println(d.WordCount())
	case "serve":
		runServe(d, cfg, logger)
	default:
		logger.Error().Str("command", command).Msg("unknown command")
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Fprint(os.Stderr, `stringtrie - case-insensitive word dictionary

Usage:
  stringtrie [flags] <command> [arguments]

Commands:
  load <file>      load words from a newline-delimited file and report the count
  add <word>       add a word (saved back to the dictionary file, if configured)
  remove <word>    remove a word (saved back to the dictionary file, if configured)
  search <word>    check whether a word is stored
  prefix <prefix>  list stored words beginning with a prefix
  words            list every stored word, sorted
  save <file>      write the sorted word list to a file (fails if it exists)
  count            print the number of stored words
  serve            start the HTTP API server

Flags:
`)
	pflag.PrintDefaults()
}

func requireArg(args []string, name string, logger zerolog.Logger) string {
	if len(args) < 1 {
		logger.Fatal().Msgf("missing required argument: %s", name)
	}
	return args[0]
}

func runLoad(d *dict.Dictionary, args []string, logger zerolog.Logger) {
	path := requireArg(args, "file", logger)

	loaded, err := d.LoadFile(path)
	if err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("load failed")
	}
	fmt.Printf("loaded %d words (%d total)\n", loaded, d.WordCount())
}

func runAdd(d *dict.Dictionary, cfg *config.Config, args []string, logger zerolog.Logger) {
	word := requireArg(args, "word", logger)

	if !d.Add(word) {
		logger.Fatal().Str("word", word).Msg("word is empty, too long, or contains invalid symbols")
	}
	saveBack(d, cfg, logger)
	fmt.Printf("added %q (%d total)\n", word, d.WordCount())
}

func runRemove(d *dict.Dictionary, cfg *config.Config, args []string, logger zerolog.Logger) {
	word := requireArg(args, "word", logger)

	d.Remove(word)
	saveBack(d, cfg, logger)
	fmt.Printf("removed %q (%d total)\n", word, d.WordCount())
}

// saveBack persists mutations when a dictionary file is configured, so
// add/remove survive across invocations.
func saveBack(d *dict.Dictionary, cfg *config.Config, logger zerolog.Logger) {
	if cfg.Dictionary.File == "" {
		return
	}
	if err := d.SaveFile(cfg.Dictionary.File, true); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Dictionary.File).Msg("failed to save dictionary")
	}
}

func runSearch(d *dict.Dictionary, args []string, logger zerolog.Logger) {
	word := requireArg(args, "word", logger)

	if d.Search(word) {
		fmt.Printf("%q is in the dictionary\n", word)
		return
	}
	fmt.Printf("%q is not in the dictionary\n", word)
	os.Exit(1)
}

func runPrefix(d *dict.Dictionary, args []string, logger zerolog.Logger) {
	prefix := requireArg(args, "prefix", logger)

	for _, w := range d.SearchPrefix(prefix) {
		fmt.Println(w)
	}
}

func runWords(d *dict.Dictionary, logger zerolog.Logger) {
	if err := d.WriteWords(os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("failed to write word list")
	}
}

func runSave(d *dict.Dictionary, args []string, logger zerolog.Logger) {
	path := requireArg(args, "file", logger)

	if err := d.SaveFile(path, false); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("save failed")
	}
	fmt.Printf("wrote %d words to %s\n", d.WordCount(), path)
}

func runServe(d *dict.Dictionary, cfg *config.Config, logger zerolog.Logger) {
	server := api.NewServer(cfg.Server.Addr(), d, logger)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			logger.Fatal().Err(err).Msg("server error")
		}
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("shutdown failed")
		}
	}
}

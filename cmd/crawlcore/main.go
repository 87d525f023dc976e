package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/appengine-ltd/crawlcore/internal/config"
	"github.com/appengine-ltd/crawlcore/internal/game"
	"github.com/appengine-ltd/crawlcore/internal/logger"
	"github.com/appengine-ltd/crawlcore/internal/parser"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion  bool
		writeBalance bool
		envFile      string
		species      string
		name         string
		balancePath  string
		seed         int64
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&writeBalance, "write-balance", false, "write the effective balance file and exit")
	flag.StringVar(&envFile, "env", ".env", "dotenv file to load before reading the environment")
	flag.StringVar(&species, "species", "", "species name (overrides CRAWLCORE_SPECIES)")
	flag.StringVar(&name, "name", "", "character name (overrides CRAWLCORE_NAME)")
	flag.StringVar(&balancePath, "balance", "", "balance JSON file (overrides CRAWLCORE_BALANCE)")
	flag.Int64Var(&seed, "seed", 0, "random seed (overrides CRAWLCORE_SEED)")
	flag.Parse()

	if showVersion {
		fmt.Printf("crawlcore %s (%s) %s\n", version, commit, date)
		return
	}

	settings, err := config.ParseSettings(envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.Init(settings.LogLevel, settings.LogFormat)

	if species != "" {
		settings.Species = species
	}
	if name != "" {
		settings.Name = name
	}
	if balancePath != "" {
		settings.BalancePath = balancePath
	}
	if seed != 0 {
		settings.Seed = seed
	}
	if settings.BalancePath == "" {
		if path, err := config.DefaultBalancePath(); err == nil {
			settings.BalancePath = path
		} else {
			logger.Log.WithError(err).Warn("no config directory, using built-in balance")
		}
	}

	if writeBalance {
		if err := dumpBalance(settings.BalancePath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("balance written to %s\n", settings.BalancePath)
		return
	}

	if err := run(settings, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func dumpBalance(path string) error {
	if path == "" {
		return fmt.Errorf("write balance: no path")
	}
	b, err := config.LoadBalance(path)
	if err != nil {
		return err
	}
	return config.SaveBalance(path, b)
}

func run(settings config.Settings, in io.Reader, out io.Writer) error {
	balance, err := config.LoadBalance(settings.BalancePath)
	if err != nil {
		return err
	}
	sp, ok := game.LookupSpecies(settings.Species)
	if !ok {
		return fmt.Errorf("unknown species %q", settings.Species)
	}

	messages := &game.MessageLog{Answer: true}
	session, err := game.NewSession(game.SessionConfig{
		Player:   game.PlayerConfig{Name: settings.Name, Species: sp},
		Seed:     settings.Seed,
		Balance:  balance,
		Messages: messages,
	})
	if err != nil {
		return err
	}

	p := parser.New()
	vocab := game.LookupVocabulary()
	lastEntity := ""

	fmt.Fprintf(out, "Welcome, %s.\n", session.Player)
	fmt.Fprintln(out, session.Player.Derived)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		intent := p.Parse(parser.ParseContext{
			Inventory:  session.Player.InventoryNames(),
			Nearby:     session.FloorNames(),
			Slots:      vocab.Slots,
			Catalog:    vocab.Catalog,
			Monsters:   vocab.Monsters,
			Forms:      vocab.Forms,
			Mutations:  vocab.Mutations,
			Durations:  vocab.Durations,
			LastEntity: lastEntity,
		}, line)
		if intent.Clarify != nil {
			fmt.Fprintln(out, intent.Clarify.Prompt)
			for _, opt := range intent.Clarify.Options {
				fmt.Fprintf(out, "  %s\n", parser.IntentToCommandString(opt))
			}
			continue
		}
		if intent.Verb == "quit" {
			return nil
		}
		if len(intent.Args) > 0 {
			lastEntity = intent.Args[0]
		}

		command := parser.IntentToCommandString(intent)
		result := session.ExecuteCommand(command)
		for _, msg := range messages.Drain() {
			fmt.Fprintln(out, msg.Text)
		}
		if !result.Handled {
			fmt.Fprintf(out, "Unknown command %q. Try help.\n", command)
			continue
		}
		if result.Message != "" {
			fmt.Fprintln(out, result.Message)
		}
		if result.Death != nil {
			fmt.Fprintf(out, "You die (%s: %s).\n", result.Death.Method, result.Death.Source)
			return nil
		}
	}
	return scanner.Err()
}

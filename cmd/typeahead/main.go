// Copyright 2025 The Typeahead Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the typeahead completion engine server and CLI
demo application.

Typeahead resolves the word being typed in an editable surface to a fixed
list of candidate completions and drives a floating suggestion box for it.
The engine is host-agnostic: hosts report typing activity and selections,
the engine answers with box state and buffer splices. It can operate as a
MessagePack IPC server for integration with editor hosts, or as an
interactive CLI demo for testing and debugging.

# Usage

Start the server with default settings:

	typeahead

Use a custom suggestion table and enable debug mode:

	typeahead -table /path/to/table.toml -d

Run in CLI demo mode:

	typeahead -c -limit 5

# Configuration

Runtime configuration is managed through a TOML file:

	[widget]
	max_candidates = 24
	min_token_len = 1
	max_token_len = 60

	[table]
	path = ""

The config file is automatically created with defaults if it doesn't
exist. An empty table path means the compiled-in suggestion table.

Suggestion tables are TOML files mapping lowercase tokens to ordered
candidate lists:

	[suggestions]
	hel = ["hello", "help", "helmet"]

Lookup is exact on the lowercased token. Extending the vocabulary means
shipping a new table file, not a runtime API.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Requests are
processed synchronously with microsecond timing included in completion
responses.

Send a completion request:

	{"id": "req1", "cmd": "complete", "t": "hel", "l": 8}

Receive the ordered candidates:

	{"id": "req1", "c": ["hello", "help", "helmet"], "n": 3, "t": 12}

Splice a chosen candidate into a buffer:

	{"id": "req2", "cmd": "apply", "b": "hello wo", "p": 8, "w": "world"}
	{"id": "req2", "b": "hello world", "p": 11}

# CLI Demo Mode

Demo mode reads lines from stdin, treats each as a field with the caret
at its end, and renders the suggestion box under the anchor with lipgloss.
A "!N" line applies candidate N in place and prints the spliced buffer
with the caret marker. This mode is primarily intended for development
and for trying table files before wiring a host.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/bastiangx/typeahead/internal/cli"
	"github.com/bastiangx/typeahead/internal/logger"
	"github.com/bastiangx/typeahead/pkg/config"
	"github.com/bastiangx/typeahead/pkg/overlay"
	"github.com/bastiangx/typeahead/pkg/server"
	"github.com/bastiangx/typeahead/pkg/suggest"
	"github.com/bastiangx/typeahead/pkg/widget"
)

const (
	Version = "0.3.0"
	AppName = "typeahead"
	gh      = "https://github.com/bastiangx/typeahead"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI demo.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaultConfig := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI demo -- useful for testing and debugging")
	configPath := flag.String("config", "", "Path to a config.toml (default: user config dir)")
	tablePath := flag.String("table", "", "Path to a TOML suggestion table (default: builtin table)")
	limit := flag.Int("limit", defaultConfig.CLI.DefaultLimit, "Number of suggestions to show in demo mode")

	flag.Parse()

	limitSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "limit" {
			limitSet = true
		}
	})

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	table := loadTable(*tablePath, appConfig)
	log.Debugf("Table ready: %d tokens", table.Len())

	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)

		opts := widget.Options{
			MaxCandidates: appConfig.EffectiveCLILimit(*limit, limitSet),
			MinTokenLen:   appConfig.Widget.MinTokenLen,
			MaxTokenLen:   appConfig.Widget.MaxTokenLen,
		}
		w := widget.New(table, overlay.NewTermRenderer(os.Stdout), opts)

		inputHandler := cli.NewInputHandler(w)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(table, appConfig)

	showStartupInfo(table)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// loadTable resolves the suggestion table: -table flag first, then the
// config path, then the compiled-in table.
func loadTable(flagPath string, cfg *config.Config) *suggest.Table {
	path := flagPath
	if path == "" {
		path = cfg.Table.Path
	}
	if path == "" {
		log.Debug("No table file specified, using builtin table")
		return suggest.Builtin()
	}

	table, err := suggest.LoadTOML(path)
	if err != nil {
		log.Warnf("Failed to load table from %s: %v. Using builtin table...", path, err)
		return suggest.Builtin()
	}
	return table
}

// printVersion shows the styled version banner.
func printVersion() {
	banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

	styles := log.DefaultStyles()

	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})

	banner.SetStyles(styles)

	banner.Print("")
	banner.Print("[ Typeahead ] Inline word completions for editable surfaces!")
	banner.Print("", "version", Version)
	banner.Print("")
	banner.Print("use -h or --help to see available options")
	banner.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
// Written to stderr so the stdout msgpack stream stays clean.
func showStartupInfo(table *suggest.Table) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, " Typeahead ")
	fmt.Fprintln(os.Stderr, "===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("table tokens: [ %d ]", table.Len())
	log.Info("status: ready")
	fmt.Fprintln(os.Stderr, "===========")
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}

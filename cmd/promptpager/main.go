package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"promptpager/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: config.yaml in the XDG config dir)")
	promptFile := flag.String("prompt-file", "", "text or PDF file to page through instead of the demo prompt")
	title := flag.String("title", "", "override the prompt title")
	noIndex := flag.Bool("no-index", false, "hide the (page/count) suffix in the title")
	trace := flag.Bool("trace", false, "log engine events to stderr")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	cfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		fmt.Println("failed to load config:", err)
		os.Exit(1)
	}
	if *promptFile != "" {
		cfg.Prompt.File = *promptFile
	}
	if *title != "" {
		cfg.Prompt.Title = *title
	}
	if *noIndex {
		cfg.Prompt.ShowIndex = false
	}
	if *trace {
		cfg.Trace = true
	}

	model, err := sim.New(cfg)
	if err != nil {
		fmt.Println("failed to start simulator:", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

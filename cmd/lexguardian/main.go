package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/adesai/lexguardian/internal/llm"
	"github.com/adesai/lexguardian/internal/refdata"
	"github.com/adesai/lexguardian/internal/tui"
)

func main() {
	// A local .env is optional; the environment always wins.
	_ = godotenv.Load()

	modelFlag := flag.String("model", "", "override the default Groq model (label or id)")
	llmEndpoint := flag.String("llm-endpoint", "", "custom OpenAI-compatible endpoint (eg. https://api.groq.com/openai/v1)")
	noAltScreen := flag.Bool("no-alt-screen", false, "disable the alternate screen buffer")
	flag.Parse()

	modelID, err := resolveModel(*modelFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	client, err := llm.NewFromEnv(llm.Config{
		Model:    modelID,
		Endpoint: *llmEndpoint,
	})
	if err != nil {
		fmt.Println("cannot start LexGuardian:", err)
		os.Exit(1)
	}

	opts := []tea.ProgramOption{}
	if !*noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			LLM:     client,
			ModelID: modelID,
		}),
		opts...,
	)

	if _, err := program.Run(); err != nil {
		fmt.Println("program error:", err)
		os.Exit(1)
	}
}

// resolveModel accepts either the user-facing label or the raw model id.
func resolveModel(value string) (string, error) {
	if value == "" {
		return "", nil
	}
	ids := make([]string, 0, len(refdata.Models()))
	for _, choice := range refdata.Models() {
		if value == choice.ID || value == choice.Label {
			return choice.ID, nil
		}
		ids = append(ids, choice.ID)
	}
	return "", fmt.Errorf("unknown model %q; available: %s", value, strings.Join(ids, ", "))
}

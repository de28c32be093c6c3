package sim

import (
	"os"
	"path/filepath"
	"testing"

	"promptpager/internal/prompt"
)

func TestLoadPromptCollapsesWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompt.txt")
	if err := os.WriteFile(path, []byte("  Transfer\n\t42 XTZ\n\nto tz1abc  "), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := LoadPrompt(path)
	if err != nil {
		t.Fatalf("load prompt: %v", err)
	}
	if text != "Transfer 42 XTZ to tz1abc" {
		t.Fatalf("text = %q", text)
	}
}

func TestLoadPromptMissingFile(t *testing.T) {
	if _, err := LoadPrompt(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDemoProducerIsDeterministic(t *testing.T) {
	first, err := prompt.Measure(DemoProducer())
	if err != nil {
		t.Fatalf("measure: %v", err)
	}
	second, _ := prompt.Measure(DemoProducer())
	if first == 0 || first != second {
		t.Fatalf("measured %d then %d", first, second)
	}
}

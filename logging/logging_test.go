package logging

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestLoggerInitializers(t *testing.T) {
	t.Parallel()

	Init()
	if l := Logger(SourceApp); l == nil {
		t.Fatal("Logger returned nil")
	}
	if l := Logger(SourceCLI); l == nil {
		t.Fatal("Logger returned nil")
	}
}

func TestSetLevelPropagatesToDerivedLoggers(t *testing.T) {
	l := Logger(SourceReference)

	if err := SetLevel("debug"); err != nil {
		t.Fatalf("SetLevel failed: %v", err)
	}
	t.Cleanup(func() {
		_ = SetLevel("info")
	})

	if l.GetLevel() != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", l.GetLevel())
	}

	if err := SetLevel("loud"); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

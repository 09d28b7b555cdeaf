package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestComponentTagsJSONOutput(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})

	logger := Component("registry")
	logger.Info().Str("key", "green").Msg("resolved")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if line["component"] != "registry" {
		t.Fatalf("component = %v, want registry", line["component"])
	}
	if line["key"] != "green" {
		t.Fatalf("key = %v, want green", line["key"])
	}
}

func TestInitUnknownLevelFallsBackToInfo(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	Init(Config{Level: "chatty", Format: "json", Output: &buf})

	if got := zerolog.GlobalLevel(); got != zerolog.InfoLevel {
		t.Fatalf("global level = %s, want info", got)
	}

	l := Logger()
	l.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug line should be filtered, got %q", buf.String())
	}
}

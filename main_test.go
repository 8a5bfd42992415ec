package main

import (
	"testing"

	"github.com/sethks/ground-item-organizer/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		Logging:   config.Logging{FilePath: "organizer.log", Trace: true},
		Organizer: config.Default(),
		Flags:     map[string]string{"profile": "profile.yaml"},
		Args:      []string{"-profile", "profile.yaml"},
	}
	payload := startupTracePayload(cfg)
	flags, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("flags missing from payload")
	}
	if flags["profile"] != "profile.yaml" {
		t.Fatalf("profile flag missing, got %v", flags["profile"])
	}
	if flags["trace"] != true {
		t.Fatalf("trace flag not recorded")
	}
	if payload["sections"] != len(config.Default().Sections) {
		t.Fatalf("section count missing from payload")
	}
	if _, ok := payload["tty"]; !ok {
		t.Fatalf("tty details missing from payload")
	}
}

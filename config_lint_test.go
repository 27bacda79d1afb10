package goLaunch

import (
	"testing"
)

func TestLint_DefaultConfigNoDangerousWarnings(t *testing.T) {
	// The default config is intentionally permissive (FollowPageParam=true,
	// CaptureRawToken=true), so it will have some warnings. But it should NOT
	// have "dangerous" warnings like blocking telemetry emits.
	cfg := defaultConfig()
	ws := cfg.Lint()

	codes := ws.Codes()

	if containsCode(codes, "telemetry_blocking") {
		t.Error("default config should not have telemetry_blocking (telemetry is off)")
	}
	if containsCode(codes, "raw_token_captured") {
		t.Error("default config should not have raw_token_captured (telemetry is off)")
	}
}

func TestLint_HardenedConfigMinimalWarnings(t *testing.T) {
	cfg := HardenedConfig()
	ws := cfg.Lint()
	codes := ws.Codes()

	// Hardened should not warn about most things.
	unwanted := []string{
		"telemetry_blocking",
		"raw_token_captured",
		"telemetry_buffer_small",
		"page_follow_enabled",
	}
	for _, code := range unwanted {
		if containsCode(codes, code) {
			t.Errorf("HardenedConfig should not produce warning %q", code)
		}
	}
}

func TestLint_TelemetryBlocking(t *testing.T) {
	cfg := defaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.DropIfFull = false
	ws := cfg.Lint()
	if !containsCode(ws.Codes(), "telemetry_blocking") {
		t.Error("expected telemetry_blocking warning")
	}
}

func TestLint_RawTokenCaptured(t *testing.T) {
	cfg := defaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.CaptureRawToken = true
	ws := cfg.Lint()
	if !containsCode(ws.Codes(), "raw_token_captured") {
		t.Error("expected raw_token_captured warning")
	}
}

func TestLint_SmallTelemetryBuffer(t *testing.T) {
	cfg := defaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.BufferSize = 8
	ws := cfg.Lint()
	if !containsCode(ws.Codes(), "telemetry_buffer_small") {
		t.Error("expected telemetry_buffer_small warning")
	}
}

func TestLint_NoWarningForAdequateBuffer(t *testing.T) {
	cfg := defaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.BufferSize = 64
	ws := cfg.Lint()
	if containsCode(ws.Codes(), "telemetry_buffer_small") {
		t.Error("should not warn when buffer == 64")
	}
}

func TestLint_PageFollowEnabled(t *testing.T) {
	cfg := defaultConfig()
	cfg.Routing.FollowPageParam = true
	ws := cfg.Lint()
	if !containsCode(ws.Codes(), "page_follow_enabled") {
		t.Error("expected page_follow_enabled warning")
	}
}

func TestLint_EmptyModeTable(t *testing.T) {
	cfg := defaultConfig()
	cfg.Routing.ModeTargets = map[string]string{}
	ws := cfg.Lint()
	if !containsCode(ws.Codes(), "mode_table_empty") {
		t.Error("expected mode_table_empty warning")
	}

	cfg.Routing.ModeTargets = map[string]string{"kiosk": "/kiosk"}
	ws = cfg.Lint()
	if containsCode(ws.Codes(), "mode_table_empty") {
		t.Error("should not warn when the mode table is populated")
	}
}

func TestLint_HistogramsWithoutMetrics(t *testing.T) {
	cfg := defaultConfig()
	cfg.Metrics.Enabled = false
	cfg.Metrics.EnableLatencyHistograms = true
	ws := cfg.Lint()
	if !containsCode(ws.Codes(), "histograms_without_metrics") {
		t.Error("expected histograms_without_metrics warning")
	}
}

func TestLint_SeverityAssignment(t *testing.T) {
	// HIGH: a full telemetry buffer stalls the bootstrap sequence.
	cfg := defaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.DropIfFull = false
	ws := cfg.Lint()
	for _, w := range ws {
		if w.Code == "telemetry_blocking" {
			if w.Severity != LintHigh {
				t.Errorf("telemetry_blocking should be HIGH, got %s", w.Severity)
			}
		}
	}
}

func TestLint_AsError(t *testing.T) {
	cfg := defaultConfig()
	// Default config should not have HIGH severity issues
	if err := cfg.Lint().AsError(LintHigh); err != nil {
		t.Errorf("default config should not fail AsError(LintHigh): %v", err)
	}

	// Introduce a HIGH severity issue
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.DropIfFull = false
	if err := cfg.Lint().AsError(LintHigh); err == nil {
		t.Error("expected AsError(LintHigh) to return error for blocking telemetry")
	}
}

func TestLint_BySeverity(t *testing.T) {
	cfg := defaultConfig()
	cfg.Telemetry.Enabled = true
	cfg.Telemetry.DropIfFull = false
	ws := cfg.Lint()

	high := ws.BySeverity(LintHigh)
	if len(high) == 0 {
		t.Error("expected at least one HIGH severity warning")
	}
	for _, w := range high {
		if w.Severity < LintHigh {
			t.Errorf("BySeverity(LintHigh) returned warning with severity %s", w.Severity)
		}
	}
}

// helpers

func containsCode(codes []string, code string) bool {
	for _, c := range codes {
		if c == code {
			return true
		}
	}
	return false
}

package common

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleHandlerLabels(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewConsoleHandler(&buf, slog.LevelInfo))

	log.Info("Preparing directories", "data", "data")
	OK(log, "Certificate generated", "path", "certs/cert.pem")
	log.Warn("Could not set permissions", "path", "certs")
	log.Error("Provisioning failed", "err", "missing dependency: openssl")
	log.Debug("hidden")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "[info] Preparing directories data=data", lines[0])
	assert.Equal(t, "[ok] Certificate generated path=certs/cert.pem", lines[1])
	assert.Equal(t, "[warn] Could not set permissions path=certs", lines[2])
	assert.Equal(t, `[err] Provisioning failed err="missing dependency: openssl"`, lines[3])
}

func TestConsoleHandlerAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewConsoleHandler(&buf, slog.LevelDebug)).
		With("run", "abc").
		WithGroup("cert")

	log.Debug("Generating", "days", 30, slog.Group("san", "dns", "localhost"))

	assert.Equal(t, "[debug] Generating run=abc cert.days=30 cert.san.dns=localhost\n", buf.String())
}

func TestSetupLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{JSON: true, Service: "pgtls-bootstrap", Version: "test", Output: &buf})

	OK(log, "done")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "OK", record["level"])
	assert.Equal(t, "done", record["msg"])
	assert.Equal(t, "pgtls-bootstrap", record["service"])
	assert.Equal(t, "test", record["version"])
}

func TestSetupLoggerTextWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{Output: &buf})

	log.Debug("hidden")
	log.Warn("careful", "path", "certs")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "path=certs")
}

func TestSetupLoggerDebug(t *testing.T) {
	var buf bytes.Buffer
	log := SetupLogger(&LoggingOpts{Debug: true, Output: &buf})

	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")
}

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"horse.fit/langid/internal/cli"
	"horse.fit/langid/internal/client"
	"horse.fit/langid/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{cli.OverrideEnvVar, "SUPPORTED_LANGUAGES", "SERVER_ADDR", "LISTEN_ADDR", "HTTP_ADDR", "LOG_LEVEL", "ENVIRONMENT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestRunUnknownCommand(t *testing.T) {
	assert.Equal(t, 2, Run(nil))
	assert.Equal(t, 2, Run([]string{"translate"}))
	assert.Equal(t, 0, Run([]string{"help"}))
}

func TestPrintUsageListsCommands(t *testing.T) {
	var out bytes.Buffer
	printUsage(&out)
	for _, cmd := range []string{"serve", "detect", "health", "languages"} {
		assert.Contains(t, out.String(), cmd)
	}
}

func TestRunLanguages(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPPORTED_LANGUAGES", "German, en")

	var out bytes.Buffer
	require.Equal(t, 0, runLanguages(nil, &out))
	assert.Equal(t, "German\nEnglish\n", out.String())

	out.Reset()
	require.Equal(t, 0, runLanguages([]string{"--codes"}, &out))
	assert.Equal(t, "de\tGerman\nen\tEnglish\n", out.String())
}

func TestRunLanguagesRejectsBadSet(t *testing.T) {
	clearEnv(t)
	t.Setenv("SUPPORTED_LANGUAGES", "Klingon,English")

	var out bytes.Buffer
	assert.Equal(t, 1, runLanguages(nil, &out))
	assert.Empty(t, out.String())
}

func TestRunDetectWithoutWordsIsNoOp(t *testing.T) {
	clearEnv(t)
	// nothing listens here; an empty request must not try to connect
	t.Setenv("SERVER_ADDR", "127.0.0.1:1")

	var out bytes.Buffer
	assert.Equal(t, 0, runDetect(nil, &out))
	assert.Empty(t, out.String())
}

func TestRunDetectReportsUnreachableServer(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	code := runDetect([]string{"--server", "127.0.0.1:1", "--timeout", "2s", "Hello", "world"}, &out)
	assert.Equal(t, 1, code)
	assert.Empty(t, out.String())
}

func TestRunBadFlags(t *testing.T) {
	clearEnv(t)

	var out bytes.Buffer
	assert.Equal(t, 2, runDetect([]string{"--nope"}, &out))
	assert.Equal(t, 2, runHealth([]string{"--nope"}, &out))
	assert.Equal(t, 2, runLanguages([]string{"--nope"}, &out))
	assert.Equal(t, 2, runServe([]string{"--nope"}))
	assert.Equal(t, 2, runServe([]string{"--listen", "not-an-address"}))
}

func TestServeEndToEnd(t *testing.T) {
	grpcLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	httpLis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	cfg := &config.Config{
		SupportedLanguages: "English,French,German,Spanish,Turkish",
		DetectorMinLetters: 1,
		ShutdownTimeout:    time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, cfg, zerolog.Nop(), grpcLis, httpLis)
	}()
	defer func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Errorf("serve did not stop")
		}
	}()

	c := client.New(grpcLis.Addr().String(), zerolog.Nop(), client.WithTimeout(30*time.Second))
	defer c.Close()

	reply, err := c.Detect(context.Background(), "Hello, how are you?")
	require.NoError(t, err)
	assert.Equal(t, "English", reply.GetLanguage())

	reply, err = c.Detect(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, reply)

	resp, err := http.Post("http://"+httpLis.Addr().String()+"/api/v1/detect", "application/json",
		strings.NewReader(`{"text":"Hello, how are you?"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			Language string `json:"language"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "English", body.Data.Language)
}

func TestServeRejectsInvalidLanguages(t *testing.T) {
	cfg := &config.Config{SupportedLanguages: "English", ShutdownTimeout: time.Second}

	err := serve(context.Background(), cfg, zerolog.Nop(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "supported languages")
}

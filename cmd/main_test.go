package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geo-rd/internal/logger"
)

func TestRunReturnsListenError(t *testing.T) {
	t.Setenv("GEO_SOURCE", "embedded")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("GEOIP_DB_PATH", "")
	t.Setenv("ADDR", "127.0.0.1:-1")

	err := run(logger.New(io.Discard, logger.ParseLevel("error"), ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen 127.0.0.1:-1")
}

func TestRunReturnsDatasetError(t *testing.T) {
	t.Setenv("GEO_SOURCE", "postgres")
	t.Setenv("PG_HOST", "127.0.0.1")
	t.Setenv("PG_PORT", "1")

	err := run(logger.New(io.Discard, logger.ParseLevel("error"), ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load dataset")
}

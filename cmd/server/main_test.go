package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerFlags(t *testing.T) {
	for _, name := range []string{"port", "key", "config", "verbose", "dev"} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "2222", rootCmd.Flags().Lookup("port").DefValue)
}

func TestRunServerBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rooms: 0\n"), 0o644))

	configPath, keyFile = path, filepath.Join(dir, "key")
	defer func() { configPath, keyFile = "", "server_host_key" }()

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	err := runServer(cmd, nil)
	assert.Error(t, err)
}

func TestRunServerStopsOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crawler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rooms: 5\n"), 0o644))

	configPath, keyFile, port = path, filepath.Join(dir, "key"), 0
	defer func() { configPath, keyFile, port = "", "server_host_key", 2222 }()

	ctx, cancel := context.WithCancel(context.Background())
	cmd := &cobra.Command{}
	cmd.SetContext(ctx)

	done := make(chan error, 1)
	go func() { done <- runServer(cmd, nil) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
	_, err := os.Stat(filepath.Join(dir, "key"))
	assert.NoError(t, err, "host key should be generated")
}

//go:build e2e && unix

package main

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPageSizeReachesTheAPI(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	api := StartFixtureAPI(t)
	WriteAppConfig(t, workspace, api.URL(), 7, "golang")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("golang story 7"), "A full page of seven should render")
	require.True(t, tf.SeePlain("page 1/7"), "45 hits at 7 per page make 7 pages")

	sawPageSize := tf.WaitFor(func(string) bool {
		for _, params := range api.Requests() {
			if params.Get("hitsPerPage") == "7" {
				return true
			}
		}
		return false
	}, 3*time.Second)
	require.True(t, sawPageSize, "Configured page size should reach the API")
}

func TestQuitRewritesConfig(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	api := StartFixtureAPI(t)
	configPath := WriteAppConfig(t, workspace, api.URL(), 5, "golang")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("golang story 1"), "Results should render")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.Quit(), "Failed to send quit")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}

	// Autosave rewrote the file and kept the endpoint
	data, err := os.ReadFile(configPath)
	require.NoError(t, err, "Should be able to read config file")

	content := string(data)
	require.True(t, strings.Contains(content, "version = 1"), "Config should keep its version")
	require.True(t, strings.Contains(content, api.URL()), "Config should keep the endpoint")
	require.True(t, strings.Contains(content, "page_size = 5"), "Config should keep the page size")
}

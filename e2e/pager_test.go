//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHelpPager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	api := StartFixtureAPI(t)
	WriteAppConfig(t, workspace, api.URL(), 5, "golang")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("golang story 1"), "Results should render")

	// Open the help pager and assert on real pager bytes (normalized)
	require.NoError(t, tf.SendKeys(KeyHelp), "Failed to open help")

	require.True(t, tf.OutputContainsPlain("Story Actions", 5*time.Second), "Help should list story actions")
	require.True(t, tf.SeePlain("Result Pages"), "Help should list page keys")

	// Quit the pager and make sure the TUI takes input again
	require.NoError(t, tf.Quit(), "Failed to quit the pager")
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, tf.SendKeys(KeyInfo), "Failed to open info popup")
	require.True(t, tf.SeePlain("item?id=golang-1"), "TUI should respond after the pager closes")
}

func TestArticlePager(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	api := StartFixtureAPI(t)
	WriteAppConfig(t, workspace, api.URL(), 5, "golang")

	err = tf.StartApp()
	require.NoError(t, err, "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("golang story 1"), "Results should render")

	// Open the first story; its link points back at the fixture server
	require.NoError(t, tf.SendEnter(), "Failed to open the article")

	require.True(t,
		tf.OutputContainsPlain("The migration finished two hours before the traffic spike arrived", 10*time.Second),
		"Extracted article text should show in the pager")

	// Quit the pager and make sure the TUI takes input again
	require.NoError(t, tf.Quit(), "Failed to quit the pager")
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, tf.SendKeys(KeyInfo), "Failed to open info popup")
	require.True(t, tf.SeePlain("item?id=golang-1"), "TUI should respond after the pager closes")
}

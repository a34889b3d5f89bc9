package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	configfile "github.com/chartlens-labs/chartlens-cli/internal/adapters/driven/config/file"
)

func TestServeCmd_Use(t *testing.T) {
	assert.Equal(t, "serve", serveCmd.Use)
}

func TestServeCmd_Short(t *testing.T) {
	assert.Equal(t, "Serve the web dashboard", serveCmd.Short)
}

func TestServeCmd_DefaultFlags(t *testing.T) {
	addr := serveCmd.Flags().Lookup("addr")
	require.NotNil(t, addr)
	assert.Equal(t, "127.0.0.1:8750", addr.DefValue)

	rate := serveCmd.Flags().Lookup("rate-limit")
	require.NotNil(t, rate)
	assert.Equal(t, "20", rate.DefValue)
}

func TestServeCmd_ConfigFallback(t *testing.T) {
	cs, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cs.Set("serve.addr", "127.0.0.1:9100"))
	require.NoError(t, cs.Set("serve.rate_limit", 5))

	configStore = cs
	defer func() {
		configStore = nil
		serveAddr = "127.0.0.1:8750"
		serveRate = 20
	}()

	applyServeConfig(serveCmd)

	assert.Equal(t, "127.0.0.1:9100", serveAddr)
	assert.Equal(t, float64(5), serveRate)
}

func TestServeCmd_FlagOverridesConfig(t *testing.T) {
	cs, err := configfile.NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cs.Set("serve.addr", "127.0.0.1:9100"))

	configStore = cs
	require.NoError(t, serveCmd.Flags().Set("addr", "127.0.0.1:7000"))
	defer func() {
		configStore = nil
		serveAddr = "127.0.0.1:8750"
		serveRate = 20
		serveCmd.Flags().Lookup("addr").Changed = false
	}()

	applyServeConfig(serveCmd)

	assert.Equal(t, "127.0.0.1:7000", serveAddr)
}

func TestServeCmd_RequiresServices(t *testing.T) {
	recordService = nil
	annotationIndexer = nil
	spanHighlighter = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"serve"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

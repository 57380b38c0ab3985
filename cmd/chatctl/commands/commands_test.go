package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-support-agent/internal/order/repository/sqlite"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`environment:
  name: test
logger:
  mode: development
order_store:
  dsn: %s
  seed: false
`, filepath.Join(dir, "data", "orders.db"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSeedThenListOrders(t *testing.T) {
	cfg := writeConfig(t)

	out, err := run(t, "seed", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("%d orders, %d products", len(sqlite.SeedOrders()), len(sqlite.SeedProducts())))

	out, err = run(t, "orders", "--config", cfg, "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "ORDER")
	assert.Contains(t, out, fmt.Sprintf("5 of %d orders", len(sqlite.SeedOrders())))

	out, err = run(t, "orders", "--config", cfg, "ORD12345")
	require.NoError(t, err)
	assert.Contains(t, out, "ORD12345")
	assert.Contains(t, out, "Shipped")

	_, err = run(t, "orders", "--config", cfg, "ORD99999")
	assert.Error(t, err)
}

func TestAsk(t *testing.T) {
	cfg := writeConfig(t)
	_, err := run(t, "seed", "--config", cfg)
	require.NoError(t, err)

	out, err := run(t, "ask", "--config", cfg, "--trace", "Where's my order ORD12345?")
	require.NoError(t, err)
	assert.Contains(t, out, "Shipped")
	assert.Contains(t, out, "intent=ORDER_TRACKING")
	assert.Contains(t, out, "STAGE")

	askTrace = false
	out, err = run(t, "ask", "--config", cfg, "--json", "hello")
	require.NoError(t, err)
	assert.Contains(t, out, `"Verdict"`)
	askJSON = false
}

func TestAskRequiresMessage(t *testing.T) {
	_, err := run(t, "ask")
	assert.Error(t, err)
}

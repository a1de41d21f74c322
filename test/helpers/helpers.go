// test/helpers/helpers.go
package helpers

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/odalton/storekeep/internal/core/domain"
)

// TestLogger returns a test logger.
func TestLogger() *slog.Logger {
	if testing.Verbose() {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}

// NewTestElectronics builds a valid Electronics product for tests.
func NewTestElectronics(t *testing.T, id string, quantity int) *domain.Electronics {
	t.Helper()
	p, err := domain.NewElectronics(id, "4K Monitor", decimal.NewFromFloat(299.99), quantity, 2, "ViewMax")
	require.NoError(t, err)
	return p
}

// NewTestGrocery builds a valid Grocery product for tests with the given
// expiry date.
func NewTestGrocery(t *testing.T, id string, quantity int, expiry time.Time) *domain.Grocery {
	t.Helper()
	p, err := domain.NewGrocery(id, "Whole Milk 1L", decimal.NewFromFloat(1.49), quantity, expiry)
	require.NoError(t, err)
	return p
}

// NewTestClothing builds a valid Clothing product for tests.
func NewTestClothing(t *testing.T, id string, quantity int) *domain.Clothing {
	t.Helper()
	p, err := domain.NewClothing(id, "Denim Jacket", decimal.NewFromFloat(59.90), quantity, "M", "denim")
	require.NoError(t, err)
	return p
}

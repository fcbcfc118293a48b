// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/model"
)

// Fixtures loads the embedded dataset or fails the test.
func Fixtures(t testing.TB) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Embedded().Load(context.Background())
	require.NoError(t, err)
	return ds
}

// QuietLogger returns a logger that discards everything.
func QuietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Day parses a YYYY-MM-DD literal and panics on malformed input.
func Day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(fmt.Sprintf("testutil.Day(%q): %v", s, err))
	}
	return t
}

// RecordIDs returns the IDs of rs in order. It never returns nil.
func RecordIDs[R model.Record](rs []R) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.RecordID()
	}
	return out
}

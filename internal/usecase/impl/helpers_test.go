package impl

import (
	"io"
	"log/slog"

	"storefront/internal/domain/query"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testResources = query.NewResources()

func intPtr(v int) *int          { return &v }
func int64Ptr(v int64) *int64    { return &v }
func boolPtr(v bool) *bool       { return &v }
func stringPtr(v string) *string { return &v }

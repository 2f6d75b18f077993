package services

import (
	"log/slog"
	"os"
	"testing"

	"github.com/agentloom/loom/pkg/database"
	testdb "github.com/agentloom/loom/test/database"
)

func testClient(t *testing.T) (*database.Client, *slog.Logger) {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	return client, logger
}

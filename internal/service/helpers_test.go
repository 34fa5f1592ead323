package service_test

import (
	"io"
	"log/slog"
)

const validPassword = "Sup3r$ecretPassw0rd!"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

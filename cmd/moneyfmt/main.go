package main

import (
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	money "github.com/govalues/fxmoney"
	"github.com/govalues/fxmoney/internal/cli"
)

func main() {
	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	if err := cli.NewRootCmd(logger, money.SystemClock).Execute(); err != nil {
		level.Error(logger).Log("msg", "command failed", "err", err) //nolint:errcheck
		os.Exit(1)
	}
}

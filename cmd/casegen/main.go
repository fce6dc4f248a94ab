package main

import (
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/unicase/casegen/casemap"
	"github.com/unicase/casegen/emit"
	"github.com/unicase/casegen/logger"
)

var (
	direction = kingpin.Flag("direction", "Conversion direction to generate: upper, lower or both.").
		Default("both").Enum("upper", "lower", "both")
)

func main() {
	kingpin.Parse()

	dirs := []casemap.Direction{casemap.ToUpper, casemap.ToLower}
	if *direction != "both" {
		d, err := casemap.ParseDirection(*direction)
		if err != nil {
			logger.Fatal("bad direction", zap.Error(err))
		}
		dirs = []casemap.Direction{d}
	}

	for _, d := range dirs {
		start := time.Now()

		t, err := casemap.Build(d)
		if err != nil {
			logger.Fatal("can't build tables", zap.Stringer("direction", d), zap.Error(err))
		}
		if err := emit.Tables(os.Stdout, d, t); err != nil {
			logger.Fatal("can't write tables", zap.Stringer("direction", d), zap.Error(err))
		}

		logger.Info("tables generated",
			zap.Stringer("direction", d),
			zap.Int("multi", len(t.Multi)),
			zap.Int("single", len(t.Single)),
			zap.Duration("took", time.Since(start)),
		)
	}
}

package main

import (
	"time"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/unicase/casegen/epoch"
	"github.com/unicase/casegen/logger"
)

var (
	root  = kingpin.Flag("root", "Tree root to rebase.").Default(".").ExistingDir()
	dirs  = kingpin.Flag("dir", "Subdirectory to scan; repeat for several.").Default("include", "src", "test").Strings()
	token = kingpin.Flag("token", "Name prefix the year is attached to.").Default("pystd").String()
	from  = kingpin.Flag("from", "Year to copy from; defaults to last year.").Int()
	to    = kingpin.Flag("to", "Year to copy to; defaults to this year.").Int()
)

func main() {
	kingpin.Parse()

	year := time.Now().Year()
	if *from == 0 {
		*from = year - 1
	}
	if *to == 0 {
		*to = year
	}
	if *from == *to {
		logger.Fatal("nothing to rebase: years match", zap.Int("year", *from))
	}

	stats, err := epoch.Bump(epoch.Config{
		Root:  *root,
		Dirs:  *dirs,
		Token: *token,
		Old:   *from,
		New:   *to,
	})
	if err != nil {
		logger.Fatal("rebase failed", zap.Int("written", stats.Written), zap.Error(err))
	}

	logger.Info("rebase done",
		zap.Int("written", stats.Written),
		zap.Int("from", *from),
		zap.Int("to", *to),
	)
}

package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/unicase/casegen/logger"
	"github.com/unicase/casegen/wordfreq"
)

var (
	file = kingpin.Arg("file", "Plain-text file to count words in.").Required().ExistingFile()
)

func main() {
	kingpin.Parse()

	f, err := os.Open(*file)
	if err != nil {
		logger.Fatal("can't open file", zap.String("file", *file), zap.Error(err))
	}
	defer f.Close()

	counts, err := wordfreq.Count(f)
	if err != nil {
		logger.Fatal("can't count words", zap.String("file", *file), zap.Error(err))
	}

	for _, e := range wordfreq.Sorted(counts) {
		fmt.Printf("%d %s\n", e.Count, e.Word)
	}
}

package epoch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/unicase/casegen/logger"
)

// Config names the tree to rebase and the year pair to move between.
type Config struct {
	Root  string   // tree root holding Dirs
	Dirs  []string // subdirectories scanned for year-tagged files
	Token string   // lowercase name prefix the year is glued to, e.g. "pystd"
	Old   int      // year to copy from
	New   int      // year to copy to
}

// Stats reports what Bump did.
type Stats struct {
	Written int
}

// Bump copies every file whose name carries the old year to a twin named
// after the new year, rewriting <token><old> and <TOKEN><old> occurrences in
// the contents. Originals stay in place. A failing file is skipped, its error
// kept; all collected errors come back joined after the full walk.
func Bump(cfg Config) (Stats, error) {
	var stats Stats
	var errs error

	oldYear := strconv.Itoa(cfg.Old)
	newYear := strconv.Itoa(cfg.New)

	for _, dir := range cfg.Dirs {
		matches, err := filepath.Glob(filepath.Join(cfg.Root, dir, "*"+oldYear+"*"))
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("globbing %s: %w", dir, err))
			continue
		}
		for _, path := range matches {
			written, err := bumpFile(path, cfg.Token, oldYear, newYear)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if written {
				stats.Written++
			}
		}
	}

	return stats, errs
}

// bumpFile writes the year-shifted twin of one file. Non-regular matches
// (directories mostly) are skipped without error.
func bumpFile(path, token, oldYear, newYear string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	contents := string(data)
	contents = strings.ReplaceAll(contents, token+oldYear, token+newYear)
	upper := strings.ToUpper(token)
	contents = strings.ReplaceAll(contents, upper+oldYear, upper+newYear)

	// the year moves only in the base name, never in parent directories
	target := filepath.Join(filepath.Dir(path), strings.ReplaceAll(filepath.Base(path), oldYear, newYear))
	if err := os.WriteFile(target, []byte(contents), info.Mode().Perm()); err != nil {
		return false, fmt.Errorf("write %s: %w", target, err)
	}

	logger.Debug("file rebased", zap.String("from", path), zap.String("to", target))
	return true, nil
}

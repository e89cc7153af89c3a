// File: pkg/headers/collect.go
package headers

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"headerdump/pkg/config"

	"go.uber.org/zap"
)

// CollectHeaders lists the header files directly inside the include directory
// of root, sorted by file name. A missing include directory yields an empty
// list. Subdirectories are never entered.
func CollectHeaders(root string, opts config.Options, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	includeDir := joinPath(root, opts.IncludeDir)
	info, err := os.Stat(includeDir)
	if err != nil || !info.IsDir() {
		logger.Debug("No include directory", zap.String("dir", includeDir))
		return nil, nil
	}

	entries, err := os.ReadDir(includeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", includeDir, err)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, opts.Suffix) {
			continue
		}
		// Stat follows symlinks, so a link to a regular file counts.
		fi, err := os.Stat(filepath.Join(includeDir, name))
		if err != nil {
			logger.Debug("Skipping unresolvable entry", zap.String("name", name), zap.Error(err))
			continue
		}
		if !fi.Mode().IsRegular() {
			logger.Debug("Skipping non-regular entry", zap.String("name", name))
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		paths = append(paths, joinPath(includeDir, name))
	}

	logger.Debug("Collected header files", zap.String("dir", includeDir), zap.Int("count", len(paths)))
	return paths, nil
}

// joinPath appends name to dir without cleaning dir, so report paths keep the
// root as the user typed it ("." gives "./include/x.h").
func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	if os.IsPathSeparator(dir[len(dir)-1]) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}

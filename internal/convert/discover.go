// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/pdiddy/html2latex/pkg/types"
)

const zipExt = ".zip"

// EnsureInputDir creates dir when it does not exist. It reports whether
// the folder was just created, in which case it is empty and there is
// nothing to convert yet.
func EnsureInputDir(dir string) (created bool, err error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, errors.Errorf("input path %s is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "checking input directory %s", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, errors.Wrapf(err, "creating input directory %s", dir)
	}
	return true, nil
}

// DiscoverArchives lists the *.zip files in inputDir in directory-listing
// order and maps each to its folder under outputDir.
func DiscoverArchives(inputDir, outputDir string) ([]types.Archive, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, errors.Wrapf(err, "reading input directory %s", inputDir)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), zipExt) {
			continue
		}
		paths = append(paths, filepath.Join(inputDir, e.Name()))
	}
	return ArchivesFromPaths(paths, outputDir), nil
}

// ArchivesFromPaths builds Archive records from explicit zip paths. Each
// archive's ID is derived from its file name.
func ArchivesFromPaths(zipPaths []string, outputDir string) []types.Archive {
	archives := make([]types.Archive, len(zipPaths))
	for i, p := range zipPaths {
		archives[i] = types.NewArchive(p, outputDir)
	}
	return archives
}

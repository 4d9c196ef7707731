package batch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ocrmark/ocrmark/constants"
	"github.com/ocrmark/ocrmark/internal/pipeline"
)

// Discover enumerates supported image files directly under inputDir in
// sorted order and derives one task per file. Hidden files are skipped.
func Discover(inputDir, outputDir, suffix string) ([]pipeline.Task, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	var tasks []pipeline.Task
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name[0] == '.' {
			continue
		}
		if !constants.IsImageExt(filepath.Ext(name)) {
			continue
		}
		src := filepath.Join(inputDir, name)
		tasks = append(tasks, pipeline.Task{
			SourcePath:   src,
			ArtifactPath: constants.ArtifactPath(outputDir, src, suffix),
		})
	}
	return tasks, nil
}

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File is a generated output.
type File struct {
	// Name is the path relative to the output directory.
	Name    string
	Content []byte
}

// WriteFiles writes all generated files below the output directory,
// creating directories as needed.
func WriteFiles(files []File, outputDir string) error {
	for _, file := range files {
		outputPath := filepath.Join(outputDir, filepath.FromSlash(file.Name))

		err := os.MkdirAll(filepath.Dir(outputPath), dirPerm)
		if err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}

		err = os.WriteFile(outputPath, file.Content, filePerm)
		if err != nil {
			return fmt.Errorf("writing file %s: %w", file.Name, err)
		}
	}

	return nil
}

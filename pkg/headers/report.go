// File: pkg/headers/report.go
package headers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"headerdump/pkg/config"

	"go.uber.org/zap"
)

// ReadSection reads one header. It never fails: a read or decoding error is
// kept on the Section and rendered inline by Body.
func ReadSection(path string, logger *zap.Logger) Section {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err == nil && !utf8.Valid(data) {
		err = ErrInvalidEncoding
	}
	if err != nil {
		logger.Warn("Failed to read header file", zap.String("filePath", path), zap.Error(err))
		return Section{Path: path, Err: err}
	}

	logger.Debug("Read header file", zap.String("filePath", path), zap.Int("contentSizeBytes", len(data)))
	return Section{Path: path, Content: string(data)}
}

// WriteReport renders the banner followed by one fenced section per path, in
// the order given.
func WriteReport(w io.Writer, paths []string, opts config.Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	writer := bufio.NewWriter(w)
	if _, err := writer.WriteString(opts.Banner + "\n"); err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}

	for _, path := range paths {
		section := ReadSection(path, logger)
		if _, err := fmt.Fprintf(writer, "\n%s:\n```%s\n%s\n```\n", section.Path, opts.FenceLang, section.Body()); err != nil {
			return fmt.Errorf("failed to write section for %s: %w", path, err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// GenerateReport collects the headers of root and writes the report into
// root, replacing any previous one. It returns the report path.
func GenerateReport(root string, opts config.Options, logger *zap.Logger) (outputPath string, err error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	files, err := CollectHeaders(root, opts, logger)
	if err != nil {
		return "", fmt.Errorf("failed to collect headers: %w", err)
	}

	outputPath = joinPath(root, opts.Output)
	outFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := outFile.Close(); cerr != nil && err == nil {
			outputPath, err = "", fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := WriteReport(outFile, files, opts, logger); err != nil {
		return "", err
	}

	logger.Info("Wrote header report", zap.String("outputFile", outputPath), zap.Int("totalFiles", len(files)))
	return outputPath, nil
}

package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type Exporter struct {
	OutputDir string
}

func NewExporter(outputDir string) *Exporter {
	return &Exporter{OutputDir: outputDir}
}

func (e *Exporter) ExportJSON(rep SprintReport, filename string) error {
	data, err := json.MarshalIndent(rep, "", "\t")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	return os.WriteFile(filepath.Join(e.OutputDir, filename), data, 0644)
}

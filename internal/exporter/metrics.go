package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apperrors "returnsight/internal/errors"
)

// WriteJSON writes a reporting artifact (model metrics, run summaries) as
// indented JSON.
func WriteJSON(filePath string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("failed to marshal JSON artifact", err)
	}
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return apperrors.NewStorageError("failed to create artifact directory", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return apperrors.NewStorageError(
			fmt.Sprintf("failed to write %s", filePath), err)
	}
	return nil
}

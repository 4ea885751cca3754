package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// FileSuffix follows the owner name in export file names.
const FileSuffix = "_allowance-ledger.csv"

// Filename returns "{owner}_allowance-ledger.csv". Path separators in owner
// are replaced so the file always lands in the export directory.
func Filename(owner string) string {
	safe := strings.NewReplacer("/", "_", `\`, "_").Replace(owner)
	return safe + FileSuffix
}

// WriteFile writes the table to dir/Filename(owner), creating dir if needed.
func WriteFile(dir, owner string, txns []model.Transaction) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	path := filepath.Join(dir, Filename(owner))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export file: %w", err)
	}

	if err := WriteTable(f, txns); err != nil {
		f.Close()
		return "", fmt.Errorf("writing export: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing export file: %w", err)
	}
	return path, nil
}

package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/bnskaggs/PSN-and-Steam-Achievement-Data-Scraper/pkg/models"
)

// Header is the fixed column set of the exported CSV.
var Header = []string{"api_name", "title", "description", "hidden", "icon", "icon_gray", "global_percent"}

// WriteCSV writes rows to path in the caller's order, header first. An empty
// row set still produces a header-only file.
func WriteCSV(path string, rows []models.Row) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.APIName,
			row.Title,
			row.Description,
			row.Hidden,
			row.Icon,
			row.IconGray,
			row.GlobalPercent,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", row.APIName, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// Package export writes timeline events to CSV or JSON files.
package export

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/sadopc/sejarah/internal/content"
)

var csvHeader = []string{"ID", "Year", "Hijri Year", "Era", "Title", "Subtitle", "Category", "Location", "Image", "Description"}

func ToCSV(events []content.Event, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range events {
		row := []string{
			e.ID,
			e.Year,
			e.HijriYear,
			e.Era(),
			e.Title,
			e.Subtitle,
			e.Category,
			e.Location,
			e.BackgroundImage,
			e.Description,
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

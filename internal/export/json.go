package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/sejarah/internal/content"
)

type jsonExport struct {
	ExportedAt string      `json:"exported_at"`
	Count      int         `json:"count"`
	Events     []jsonEvent `json:"events"`
}

type jsonEvent struct {
	ID              string `json:"id"`
	Year            string `json:"year"`
	HijriYear       string `json:"hijri_year"`
	Era             string `json:"era"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	Category        string `json:"category"`
	Location        string `json:"location"`
	BackgroundImage string `json:"background_image,omitempty"`
	Description     string `json:"description,omitempty"`
}

// ToJSON writes events in collection order. An empty input writes
// "events": [] rather than null.
func ToJSON(events []content.Event, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(events),
		Events:     make([]jsonEvent, 0, len(events)),
	}

	for _, e := range events {
		export.Events = append(export.Events, jsonEvent{
			ID:              e.ID,
			Year:            e.Year,
			HijriYear:       e.HijriYear,
			Era:             e.Era(),
			Title:           e.Title,
			Subtitle:        e.Subtitle,
			Category:        e.Category,
			Location:        e.Location,
			BackgroundImage: e.BackgroundImage,
			Description:     e.Description,
		})
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}

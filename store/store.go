// Package store loads the flight-search dataset the application browses.
// The dataset is file-resident and read-only; a default payload is
// embedded so the binary works without any setup.
package store

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"flightdeals-cli/model"
)

// DatasetEnv overrides the dataset location when set.
const DatasetEnv = "FLIGHTDEALS_DATASET"

//go:embed flights.json
var embeddedDataset []byte

// DatasetPath resolves the dataset override from the environment. An
// empty result means the embedded dataset is used.
func DatasetPath() string {
	return strings.TrimSpace(os.Getenv(DatasetEnv))
}

// LoadDataset reads and decodes a search-response payload. An empty path
// selects the embedded dataset.
func LoadDataset(path string) (model.SearchResult, error) {
	data := embeddedDataset
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return model.SearchResult{}, fmt.Errorf("read dataset: %w", err)
		}
	}

	var result model.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.SearchResult{}, fmt.Errorf("decode dataset: %w", err)
	}
	if len(result.Result.Flights) == 0 {
		return model.SearchResult{}, errors.New("dataset contains no flights")
	}
	return result, nil
}

// Flights flattens the offer entries into the flight list the engine
// consumes.
func Flights(result model.SearchResult) []model.Flight {
	flights := make([]model.Flight, 0, len(result.Result.Flights))
	for _, entry := range result.Result.Flights {
		flights = append(flights, entry.Flight)
	}
	return flights
}

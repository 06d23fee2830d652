package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
)

// DefaultLabels is the SST-2 label order used when the model config does not
// carry an id2label map.
var DefaultLabels = []string{"NEGATIVE", "POSITIVE"}

// loadLabels reads the id2label map from a Hugging Face config.json and
// returns label names ordered by class index. A missing file or map yields
// DefaultLabels.
func loadLabels(path string) ([]string, error) {
	if path == "" {
		return DefaultLabels, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultLabels, nil
	}
	if err != nil {
		return nil, fmt.Errorf("labels: %w", err)
	}

	var cfg struct {
		ID2Label map[string]string `json:"id2label"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("labels: failed to parse %s: %w", path, err)
	}
	if len(cfg.ID2Label) == 0 {
		return DefaultLabels, nil
	}

	ids := make([]int, 0, len(cfg.ID2Label))
	for k := range cfg.ID2Label {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("labels: non-numeric class id %q", k)
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)

	labels := make([]string, len(ids))
	for i, id := range ids {
		if id != i {
			return nil, fmt.Errorf("labels: class ids are not contiguous from 0: missing %d", i)
		}
		labels[i] = cfg.ID2Label[strconv.Itoa(id)]
	}
	return labels, nil
}

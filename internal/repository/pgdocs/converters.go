package pgdocs

import (
	"encoding/json"
	"fmt"

	"packshare/internal/store"
)

func ToDocument(d *DocumentDB) (store.Document, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(d.Data, &data); err != nil {
		return store.Document{}, fmt.Errorf("decode document %s/%s: %w", d.Path, d.ID, err)
	}
	return store.Document{
		ID:        d.ID,
		Data:      data,
		UpdatedAt: d.UpdatedAt,
	}, nil
}

// FromData сериализует payload в jsonb. time.Time уходит строкой RFC3339,
// обратное преобразование делает docmodel.
func FromData(data map[string]interface{}) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode document payload: %w", err)
	}
	return raw, nil
}

package integration

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Проверяется только структура верхнего уровня: объект с объектом под ключом
// провайдера. Диапазоны оценок не проверяются, это забота отображения.
func providerSchema(provider string) (*gojsonschema.Schema, error) {
	doc := map[string]interface{}{
		"type":     "object",
		"required": []string{provider},
		"properties": map[string]interface{}{
			provider: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"items": map[string]interface{}{"type": []string{"array", "null"}},
				},
			},
		},
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	return gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
}

func validateBody(schema *gojsonschema.Schema, body []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", ErrMalformedResponse, strings.Join(msgs, "; "))
	}

	return nil
}

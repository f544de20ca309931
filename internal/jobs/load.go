package jobs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// ListKey is the document key holding postings in YAML or JSON object files.
const ListKey = "jobs"

// Decode converts generic items (decoded JSON or YAML) into result using json tags.
// Field names match case-insensitively and timestamps may be RFC 3339 strings.
func Decode(items any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			singleToSliceHook,
		),
	})
	if err != nil {
		return fmt.Errorf("creating decoder: %w", err)
	}

	return decoder.Decode(items)
}

// singleToSliceHook accepts a lone comma separated string where a list of strings is expected.
func singleToSliceHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
		return data, nil
	}

	parts := strings.Split(data.(string), ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result, nil
}

// ReadItems returns the raw list stored in path. A JSON file may hold a bare array;
// otherwise the list is read from key.
func ReadItems(path, key string) (any, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '[' {
			var items []any
			if err := json.Unmarshal(trimmed, &items); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			return items, nil
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !v.IsSet(key) {
		return nil, fmt.Errorf("%s has no %q list", path, key)
	}
	return v.Get(key), nil
}

// LoadFile reads postings from a JSON or YAML file.
func LoadFile(path string) (*Postings, error) {
	items, err := ReadItems(path, ListKey)
	if err != nil {
		return nil, err
	}

	var postings []*Posting
	if err := Decode(items, &postings); err != nil {
		return nil, fmt.Errorf("decoding postings from %s: %w", path, err)
	}

	return &Postings{Items: postings}, nil
}

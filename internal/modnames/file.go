package modnames

import (
	"encoding/json"
	"os"
	"strconv"
)

// FileLookup returns a LookupFunc backed by a JSON document mapping topic
// bucket index (as a decimal string key) to a module display name. The file
// is re-read on every lookup, so edits show up after the cache TTL expires.
func FileLookup(path string) LookupFunc {
	return func(bucket int) (string, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		var names map[string]string
		if err := json.Unmarshal(data, &names); err != nil {
			return "", err
		}
		return names[strconv.Itoa(bucket)], nil
	}
}

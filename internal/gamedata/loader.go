// Package gamedata provides embedded battle configuration and utilities for
// loading and validating it. All validation happens at load time: a battle
// never starts with a malformed charge formula, a non-positive threshold, or
// a broken stat block.
package gamedata

import (
	"embed"
	"encoding/json"
	"fmt"
)

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// load reads and unmarshals a JSON file from the embedded filesystem.
func load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("parse %s: %w", filename, err)
	}

	return result, nil
}

// Package prompts serves the LLM prompt templates used for resume
// extraction and email generation. Templates live in JSON files keyed by
// prompt name and are embedded at compile time, so a deployed binary
// carries its prompts with it.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

// library caches each parsed prompt file after first use.
type library struct {
	mu    sync.RWMutex
	files map[string]map[string]string
}

var lib = library{files: make(map[string]map[string]string)}

func (l *library) file(filename string) (map[string]string, error) {
	l.mu.RLock()
	cached, ok := l.files[filename]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	raw, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	var parsed map[string]string
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	l.mu.Lock()
	l.files[filename] = parsed
	l.mu.Unlock()
	return parsed, nil
}

// Get retrieves a prompt by filename and key. The filename is bare, without
// a path (e.g. "extraction.json").
func Get(filename, key string) (string, error) {
	file, err := lib.file(filename)
	if err != nil {
		return "", err
	}
	prompt, ok := file[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet is Get for prompts the program cannot run without; a missing file
// or key is a packaging bug, so it panics.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data. Keys
// absent from data are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}

// List returns the prompt keys of a file in sorted order.
func List(filename string) ([]string, error) {
	file, err := lib.file(filename)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(file))
	for key := range file {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ClearCache drops all cached prompt files. Only tests need this.
func ClearCache() {
	lib.mu.Lock()
	lib.files = make(map[string]map[string]string)
	lib.mu.Unlock()
}

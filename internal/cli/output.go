package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// Identifiable is anything quiet mode can print by ID
type Identifiable interface {
	GetID() int
}

// IDsOf adapts a slice of models for Success
func IDsOf[T Identifiable](items []T) []Identifiable {
	ids := make([]Identifiable, 0, len(items))
	for _, item := range items {
		ids = append(ids, item)
	}
	return ids
}

// Success writes a successful result in quiet or JSON mode and reports whether
// it did; human output is left to the caller.
// Quiet prints one ID per line from ids (nothing when ids is empty).
// JSON writes {"success": true, key: data}.
func (f *OutputFormatter) Success(key string, data any, ids ...Identifiable) (bool, error) {
	switch {
	case f.Quiet:
		for _, item := range ids {
			fmt.Printf("%d\n", item.GetID())
		}
		return true, nil
	case f.JSON:
		return true, json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			key:       data,
		})
	default:
		return false, nil
	}
}

// ErrorWithSuggestion outputs error information with an optional suggestion.
// JSON errors go to stdout, human errors to stderr.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

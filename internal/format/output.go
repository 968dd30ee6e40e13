package format

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"todo-cli/internal/model"
	"todo-cli/internal/publish"
)

// Names lists the supported output formats, default first.
var Names = []string{"json", "yaml", "toml", "markdown"}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - yaml
// - toml (documents are written in their on-disk layout)
// - markdown (documents only)
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "yaml", "yml":
		return WriteYAML(w, v)
	case "toml":
		return WriteTOML(w, v)
	case "markdown", "md":
		doc, ok := v.(*model.Document)
		if !ok {
			return fmt.Errorf("markdown output is only available for documents")
		}
		_, err := io.WriteString(w, publish.RenderMarkdown(doc, publish.RenderOptions{}))
		return err
	default:
		return fmt.Errorf("unknown format: %s (expected one of %s)", format, strings.Join(Names, ", "))
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// WriteTOML needs a table at the top level; slices are wrapped under "items".
func WriteTOML(w io.Writer, v any) error {
	enc := toml.NewEncoder(w).SetIndentTables(true)
	if k := reflect.Indirect(reflect.ValueOf(v)).Kind(); k == reflect.Slice || k == reflect.Array {
		return enc.Encode(map[string]any{"items": v})
	}
	return enc.Encode(v)
}

package content

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads site content from a YAML file. An empty path yields Default().
// Fields the file leaves out keep their built-in values; lists given in the file
// replace the built-in lists entirely.
func Load(path string) (*Site, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes YAML content on top of Default() and validates the result.
func Parse(data []byte) (*Site, error) {
	site := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(site); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := site.Validate(); err != nil {
		return nil, fmt.Errorf("invalid content: %w", err)
	}
	return site, nil
}

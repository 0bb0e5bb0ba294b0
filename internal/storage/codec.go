package storage

import (
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
	"gopkg.in/yaml.v3"
)

// Format names a snapshot encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from the file extension. Anything that is
// not .yaml or .yml is stored as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case config.ExtYAML, config.ExtYML:
		return FormatYAML
	default:
		return FormatJSON
	}
}

func (f Format) encode(w io.Writer, s snapshot) error {
	if f == FormatYAML {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", config.JSONIndent)
	return enc.Encode(s)
}

func (f Format) decode(r io.Reader) (snapshot, error) {
	var s snapshot
	if f == FormatYAML {
		err := yaml.NewDecoder(r).Decode(&s)
		return s, err
	}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	err := dec.Decode(&s)
	return s, err
}

package catalog

import (
	"bytes"
	"io"
	"os"

	"hotel-pricing/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

// Decode parses a catalog document. Unknown fields are rejected so typos in
// hand-written catalogs surface at startup.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return &File{}, nil
		}
		return nil, errs.Wrap(err, "failed to decode catalog")
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(err, "failed to read catalog %s", path)
	}
	return Decode(bytes.NewReader(b))
}

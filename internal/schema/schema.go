// Package schema validates imported resume documents before they are stored.
package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/fnziad/ZeroTex/pkg/models"
)

//go:embed resume.schema.json
var resumeSchema []byte

var ErrInvalidDocument = errors.New("invalid resume document")

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidDocument, strings.Join(e.Problems, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDocument
}

var schemaLoader = gojsonschema.NewBytesLoader(resumeSchema)

// Validate checks raw against the resume schema.
func Validate(raw []byte) error {
	res, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if res.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, e := range res.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}

// Decode validates raw and decodes it into a resume document.
func Decode(raw []byte) (*models.ResumeData, error) {
	if err := Validate(raw); err != nil {
		return nil, err
	}
	var data models.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &data, nil
}

// Package inputs locates and reads puzzle input files.
package inputs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/temirov/aoc/internal/types"
)

const (
	// DefaultDirectory is where inputs are looked up when none is configured.
	DefaultDirectory   = "inputs"
	inputFileExtension = ".txt"

	errorUnsupportedVariantFormat = "unsupported input variant %q"
	errorMissingInputFormat       = "no %s input for day %d part %d at %s"
	errorReadInputFormat          = "read input %s: %w"
	errorInputIsDirectoryFormat   = "input path %s is a directory"
)

// Loader resolves day/part pairs to files under Directory.
type Loader struct {
	Directory string
	Variant   string
}

// NewLoader returns a Loader with defaults applied for empty values.
func NewLoader(directory string, variant string) Loader {
	if directory == "" {
		directory = DefaultDirectory
	}
	if variant == "" {
		variant = types.VariantExample
	}
	return Loader{Directory: directory, Variant: variant}
}

// Path returns <Directory>/<day>/<part>/<variant>.txt.
func (loader Loader) Path(day int, part int) (string, error) {
	switch loader.Variant {
	case types.VariantExample, types.VariantInput:
	default:
		return "", fmt.Errorf(errorUnsupportedVariantFormat, loader.Variant)
	}
	return filepath.Join(loader.Directory, strconv.Itoa(day), strconv.Itoa(part), loader.Variant+inputFileExtension), nil
}

// Load reads explicitPath when given, otherwise the file for day and part.
func (loader Loader) Load(day int, part int, explicitPath string) (string, error) {
	if explicitPath != "" {
		return ReadFile(explicitPath)
	}
	inputPath, pathError := loader.Path(day, part)
	if pathError != nil {
		return "", pathError
	}
	content, readError := ReadFile(inputPath)
	if readError != nil {
		if errors.Is(readError, os.ErrNotExist) {
			return "", fmt.Errorf(errorMissingInputFormat, loader.Variant, day, part, inputPath)
		}
		return "", readError
	}
	return content, nil
}

// ReadFile returns the contents of a regular file as text.
//
// #nosec G304
func ReadFile(inputPath string) (string, error) {
	info, statError := os.Stat(inputPath)
	if statError != nil {
		return "", fmt.Errorf(errorReadInputFormat, inputPath, statError)
	}
	if info.IsDir() {
		return "", fmt.Errorf(errorInputIsDirectoryFormat, inputPath)
	}
	content, readError := os.ReadFile(inputPath)
	if readError != nil {
		return "", fmt.Errorf(errorReadInputFormat, inputPath, readError)
	}
	return string(content), nil
}

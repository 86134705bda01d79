// Package atopile turns a normalized schematic into a hierarchical atopile
// project: one component file per library part, one module file per schematic
// sheet, and a root module wiring the sheets together.
package atopile

import (
	"fmt"
	"strings"

	"github.com/atogen/atogen/pkg/schematic"
)

// Normalizer implements the atopile identifier rules for schematic names.
// Part and component names keep only ASCII alphanumerics; net and port names
// additionally map the leading '~' to 'n', '+' to 'P', and '-' to '_', and
// keep underscores. Any name that filters down to nothing is invalid, and a
// leading non-letter gets an 'S' prefix.
type Normalizer struct{}

var _ schematic.Normalizer = Normalizer{}

// NormalizeComponentName applies the part-name rules; parts and components
// share the same normalization.
func (n Normalizer) NormalizeComponentName(name string) (string, error) {
	return n.NormalizePartName(name)
}

// NormalizeNetName normalizes a net name.
func (n Normalizer) NormalizeNetName(name string) (string, error) {
	return normalizeSignalName(name)
}

// NormalizePartName normalizes a part (or component) name.
func (n Normalizer) NormalizePartName(name string) (string, error) {
	var b strings.Builder
	for _, r := range name {
		if isASCIIAlphanumeric(r) {
			b.WriteRune(r)
		}
	}

	normalized := b.String()
	if normalized == "" {
		return "", fmt.Errorf("%w: %q", schematic.ErrInvalidName, name)
	}
	if !isASCIILetter(rune(normalized[0])) {
		normalized = "S" + normalized
	}

	return normalized, nil
}

// NormalizePortName normalizes a port's signal name, falling back to the pin
// name when the signal is empty.
func (n Normalizer) NormalizePortName(pinName, signalName string) (string, error) {
	name := signalName
	if name == "" {
		name = pinName
	}
	return normalizeSignalName(name)
}

func normalizeSignalName(name string) (string, error) {
	normalized := name
	if strings.HasPrefix(normalized, "~") {
		normalized = "n" + normalized[1:]
	}

	normalized = strings.ReplaceAll(normalized, "+", "P")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	var b strings.Builder
	for _, r := range normalized {
		if isASCIIAlphanumeric(r) || r == '_' {
			b.WriteRune(r)
		}
	}

	normalized = b.String()
	if normalized == "" {
		return "", fmt.Errorf("%w: %q", schematic.ErrInvalidName, name)
	}
	if !isASCIILetter(rune(normalized[0])) {
		normalized = "S" + normalized
	}

	return normalized, nil
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIAlphanumeric(r rune) bool {
	return isASCIILetter(r) || (r >= '0' && r <= '9')
}

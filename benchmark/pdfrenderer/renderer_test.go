package pdfrenderer

import (
	"strings"
	"testing"
)

func TestParseGeneratorType_Valid(t *testing.T) {
	for _, generatorType := range AllGeneratorTypes() {
		parsed, err := ParseGeneratorType(string(generatorType))
		if err != nil {
			t.Errorf("Expected %s to parse, got: %v", generatorType, err)
		}
		if parsed != generatorType {
			t.Errorf("Expected %s, got: %s", generatorType, parsed)
		}
	}
}

func TestParseGeneratorType_Invalid(t *testing.T) {
	invalid := []string{"", "wand", "Fitz", "pdf2image", "poppler "}
	for _, value := range invalid {
		if _, err := ParseGeneratorType(value); err == nil {
			t.Errorf("Expected error for %q, got nil", value)
		}
	}
}

func TestParseGeneratorType_ErrorListsValidNames(t *testing.T) {
	_, err := ParseGeneratorType("bogus")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	for _, generatorType := range AllGeneratorTypes() {
		if !strings.Contains(err.Error(), string(generatorType)) {
			t.Errorf("Expected error to mention %s, got: %v", generatorType, err)
		}
	}
}

func TestAllGeneratorTypes_FixedSet(t *testing.T) {
	generatorTypes := AllGeneratorTypes()
	expected := []GeneratorType{
		GeneratorFitz,
		GeneratorPDFium,
		GeneratorPoppler,
		GeneratorVips,
		GeneratorImagick,
	}
	if len(generatorTypes) != len(expected) {
		t.Fatalf("Expected %d generator types, got: %d", len(expected), len(generatorTypes))
	}
	for i, generatorType := range expected {
		if generatorTypes[i] != generatorType {
			t.Errorf("Expected %s at position %d, got: %s", generatorType, i, generatorTypes[i])
		}
	}
}

func TestParseImageType_Valid(t *testing.T) {
	for _, value := range []string{"jpeg", "png"} {
		parsed, err := ParseImageType(value)
		if err != nil {
			t.Errorf("Expected %s to parse, got: %v", value, err)
		}
		if string(parsed) != value {
			t.Errorf("Expected %s, got: %s", value, parsed)
		}
	}
}

func TestParseImageType_Invalid(t *testing.T) {
	invalid := []string{"", "webp", "PNG", "jpg", "tiff"}
	for _, value := range invalid {
		if _, err := ParseImageType(value); err == nil {
			t.Errorf("Expected error for %q, got nil", value)
		}
	}
}

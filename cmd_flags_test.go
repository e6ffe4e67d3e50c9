package main

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestIntSetFlag_FirstUseReplacesDefault(t *testing.T) {
	flagValue := intSetFlag{values: []int{150, 200, 250}}

	if err := flagValue.Set("100"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !reflect.DeepEqual(flagValue.values, []int{100}) {
		t.Errorf("Expected first use to replace default, got: %v", flagValue.values)
	}

	if err := flagValue.Set("120"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !reflect.DeepEqual(flagValue.values, []int{100, 120}) {
		t.Errorf("Expected repeated use to append, got: %v", flagValue.values)
	}
}

func TestIntSetFlag_ListValue(t *testing.T) {
	flagValue := intSetFlag{values: []int{150}}

	if err := flagValue.Set("90 100,110"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !reflect.DeepEqual(flagValue.values, []int{90, 100, 110}) {
		t.Errorf("Expected [90 100 110], got: %v", flagValue.values)
	}
}

func TestIntSetFlag_InvalidValue(t *testing.T) {
	flagValue := intSetFlag{values: []int{150}}

	if err := flagValue.Set("abc"); err == nil {
		t.Error("Expected error for non-numeric value, got nil")
	}
	if err := flagValue.Set("0"); err == nil {
		t.Error("Expected error for non-positive value, got nil")
	}
	if !reflect.DeepEqual(flagValue.values, []int{150}) {
		t.Errorf("Expected default to survive invalid input, got: %v", flagValue.values)
	}
}

func TestIntSetFlag_String(t *testing.T) {
	flagValue := intSetFlag{values: []int{150, 200, 250}}
	if got := flagValue.String(); got != "150 200 250" {
		t.Errorf("Expected \"150 200 250\", got: %q", got)
	}
}

func TestAbsPath_RelativeInput(t *testing.T) {
	got := absPath(filepath.Join("data", "input"))
	if !filepath.IsAbs(got) {
		t.Errorf("Expected absolute path, got: %q", got)
	}
}

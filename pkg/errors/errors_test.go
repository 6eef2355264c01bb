package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnsupportedFileType, "cannot import %q", "table.step")

	if err.Code != ErrCodeUnsupportedFileType {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeUnsupportedFileType)
	}
	if err.Message != `cannot import "table.step"` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrCodePricingFailed, cause, "quote request failed")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	want := "PRICING_FAILED: quote request failed: connection refused"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNoOutlineFound, "no closed paths in drawing")

	if !Is(err, ErrCodeNoOutlineFound) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeNetwork) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNoOutlineFound) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping with %w
	wrapped := fmt.Errorf("upload: %w", err)
	if !Is(wrapped, ErrCodeNoOutlineFound) {
		t.Error("Is should unwrap fmt-wrapped errors")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeTimeout, "price service did not respond")
	if got := UserMessage(err); got != "price service did not respond" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("raw")); got != "raw" {
		t.Errorf("UserMessage = %q, want raw error text", got)
	}
}

func TestValidateUploadName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantCode Code
	}{
		{"dxf ok", "tabletop.dxf", ""},
		{"dxf uppercase", "TABLETOP.DXF", ""},
		{"dwg ok as attachment", "tabletop.dwg", ""},
		{"step rejected", "tabletop.step", ErrCodeUnsupportedFileType},
		{"no extension", "tabletop", ErrCodeUnsupportedFileType},
		{"empty", "", ErrCodeInvalidInput},
		{"path traversal", "../secret.dxf", ErrCodeInvalidInput},
		{"path separator", "uploads/table.dxf", ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadName(tt.filename)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("ValidateUploadName(%q) = %v, want nil", tt.filename, err)
				}
				return
			}
			if !Is(err, tt.wantCode) {
				t.Errorf("ValidateUploadName(%q) = %v, want code %s", tt.filename, err, tt.wantCode)
			}
		})
	}
}

func TestIsOutlineSource(t *testing.T) {
	if !IsOutlineSource("table.dxf") {
		t.Error("dxf should be an outline source")
	}
	if !IsOutlineSource("table.DXF") {
		t.Error("extension check should be case-insensitive")
	}
	if IsOutlineSource("table.dwg") {
		t.Error("dwg is attachment-only, not an outline source")
	}
}

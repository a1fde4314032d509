package main

import (
	"benthicam/photogrammetry"
)

// Measurement pairs an annotation label with its photogrammetric solution.
type Measurement struct {
	Label  string                            `json:"label"`
	Result photogrammetry.ObjectHeightResult `json:"result"`
}

// Validation pairs a laser-pair label with its cross-validation record.
type Validation struct {
	Label  string                          `json:"label"`
	Result photogrammetry.ValidationResult `json:"result"`
}

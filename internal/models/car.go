// Package models defines the rental-car listing record exchanged with the
// backend API, together with the display formatting rules the owner panel
// applies to it (status labels, price units, fallbacks for absent fields).
package models

import (
	"fmt"
	"strings"
)

// Unspecified is rendered in place of any optional descriptive field the
// backend did not fill in.
const Unspecified = "ไม่ระบุ"

// PlaceholderImage is used when a listing carries no images at all.
const PlaceholderImage = "/images/car-placeholder.png"

// PriceTypePerDay is the only per-day marker the backend emits; every other
// price_type value is treated as per-hour.
const PriceTypePerDay = "per_day"

// Status is the moderation state of a listing. It is read-only from the
// owner panel's point of view; a separate moderation workflow mutates it.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Tone is the visual treatment attached to a status badge.
type Tone string

const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// Normalize maps an absent or unrecognized status to StatusApproved.
func (s Status) Normalize() Status {
	switch s {
	case StatusPending, StatusRejected:
		return s
	default:
		return StatusApproved
	}
}

// Label returns the Thai badge text for the status.
func (s Status) Label() string {
	switch s.Normalize() {
	case StatusPending:
		return "รออนุมัติ"
	case StatusRejected:
		return "ไม่อนุมัติ"
	default:
		return "อนุมัติแล้ว"
	}
}

// Tone returns the visual treatment for the status badge.
func (s Status) Tone() Tone {
	switch s.Normalize() {
	case StatusPending:
		return ToneWarning
	case StatusRejected:
		return ToneDanger
	default:
		return ToneSuccess
	}
}

// Car is a single owner-scoped rental-car listing as carried on the wire.
// The identifier is opaque; the panel never interprets it. Optional
// descriptive fields may be empty and must be rendered via the Display
// helpers, never raw.
type Car struct {
	ID          string   `json:"id"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Year        string   `json:"year"`
	Color       string   `json:"color,omitempty"`
	PlateNumber string   `json:"plate_number,omitempty"`
	EngineSize  string   `json:"engine_size,omitempty"`
	FuelType    string   `json:"fuel_type,omitempty"`
	Price       float64  `json:"price"`
	PriceType   string   `json:"price_type"`
	Status      Status   `json:"status,omitempty"`
	Images      []string `json:"images,omitempty"`
}

func orUnspecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return Unspecified
	}
	return s
}

// Title combines brand, model and year into the row heading.
func (c Car) Title() string {
	return fmt.Sprintf("%s %s (%s)",
		orUnspecified(c.Brand), orUnspecified(c.Model), orUnspecified(c.Year))
}

func (c Car) DisplayColor() string       { return orUnspecified(c.Color) }
func (c Car) DisplayPlateNumber() string { return orUnspecified(c.PlateNumber) }
func (c Car) DisplayEngineSize() string  { return orUnspecified(c.EngineSize) }
func (c Car) DisplayFuelType() string    { return orUnspecified(c.FuelType) }

// PriceUnit returns the localized pricing suffix. The mapping is a closed
// two-way choice: "per_day" and everything else.
func (c Car) PriceUnit() string {
	if c.PriceType == PriceTypePerDay {
		return "/วัน"
	}
	return "/ชั่วโมง"
}

// DisplayPrice renders the amount with its unit, e.g. "1200.00 บาท/วัน".
func (c Car) DisplayPrice() string {
	return fmt.Sprintf("%.2f บาท%s", c.Price, c.PriceUnit())
}

// CoverImage returns the first image reference, or the placeholder when the
// listing has none.
func (c Car) CoverImage() string {
	if len(c.Images) == 0 {
		return PlaceholderImage
	}
	return c.Images[0]
}

package domain

import "time"

// WasteCategory is the disposal stream a classified item belongs to.
type WasteCategory string

const (
	WasteCategoryRecyclable    WasteCategory = "RECYCLABLE"
	WasteCategoryOrganic       WasteCategory = "ORGANIC"
	WasteCategoryHazardous     WasteCategory = "HAZARDOUS"
	WasteCategoryElectronic    WasteCategory = "ELECTRONIC"
	WasteCategoryNonRecyclable WasteCategory = "NON_RECYCLABLE"
)

// Classification is one waste-classification result saved to a user's history.
// The classifier itself is an external service; this system only stores what
// it reported.
type Classification struct {
	ID         string
	UserID     string
	Label      string
	Category   WasteCategory
	Confidence float64
	ImageURL   string
	CreatedAt  time.Time
}

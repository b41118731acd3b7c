package valueobjects

// Origin records which channel produced a reading.
type Origin string

const (
	OriginMobileCapture Origin = "mobile_capture"
	OriginCSVImport     Origin = "csv_import"
	OriginWebCorrection Origin = "web_correction"
)

// IsValid checks if the origin is valid.
func (o Origin) IsValid() bool {
	switch o {
	case OriginMobileCapture, OriginCSVImport, OriginWebCorrection:
		return true
	default:
		return false
	}
}

// String returns the string representation of the origin.
func (o Origin) String() string {
	return string(o)
}

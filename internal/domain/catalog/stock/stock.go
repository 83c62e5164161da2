package stock

// Status describes listing availability.
type Status string

const (
	// Available means the listing is in stock.
	Available Status = "Available"
	// Low means the listing is close to running out.
	Low Status = "Low"
	// OutOfStock means the listing cannot be fulfilled.
	OutOfStock Status = "Out of Stock"
)

// IsValid reports whether s is a known stock status.
func (s Status) IsValid() bool {
	switch s {
	case Available, Low, OutOfStock:
		return true
	}
	return false
}

// String returns the wire representation of the status.
func (s Status) String() string { return string(s) }

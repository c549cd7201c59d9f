package scan

import "time"

// Scan is one processed receipt.
type Scan struct {
	ID              string    `json:"id"`
	StoreName       string    `json:"store_name"`
	ImagePath       string    `json:"image_path"`
	ScannedAt       time.Time `json:"scanned_at"`
	Score           int       `json:"score"`
	Items           []Item    `json:"items"`
	Recommendations []string  `json:"recommendations"`
}

type Item struct {
	Name                string        `json:"name"`
	Category            string        `json:"category"`
	SustainabilityScore int           `json:"sustainability_score"`
	Impact              string        `json:"impact"`
	Alternatives        []Alternative `json:"alternatives"`
}

type Alternative struct {
	Name   string `json:"name"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}

// Stats summarizes stored scans for the home screen.
type Stats struct {
	TotalScans   int     `json:"total_scans"`
	AverageScore float64 `json:"average_score"`
}

func (s Stats) Empty() bool { return s.TotalScans == 0 }

const (
	excellentMin = 80
	goodMin      = 60
	fairMin      = 40
)

func Rating(score int) string {
	switch {
	case score >= excellentMin:
		return "Excellent"
	case score >= goodMin:
		return "Good"
	case score >= fairMin:
		return "Fair"
	default:
		return "Poor"
	}
}

// Tier buckets a score for colouring. Fair and Poor share TierLow.
type Tier uint8

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

func (t Tier) String() string {
	switch t {
	case TierHigh:
		return "high"
	case TierMedium:
		return "medium"
	default:
		return "low"
	}
}

func TierOf(score int) Tier {
	switch {
	case score >= excellentMin:
		return TierHigh
	case score >= goodMin:
		return TierMedium
	default:
		return TierLow
	}
}

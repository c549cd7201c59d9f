package processing

import (
	"errors"
	"fmt"
	"time"
)

// Stage is one named phase of the receipt processing animation. Duration is a
// relative weight; the sum over all stages is the total run length.
type Stage struct {
	Name     string
	Message  string
	Duration time.Duration
}

func DefaultStages() []Stage {
	return []Stage{
		{Name: "Upload", Message: "Uploading image...", Duration: 1000 * time.Millisecond},
		{Name: "Analyze", Message: "Analyzing receipt...", Duration: 2000 * time.Millisecond},
		{Name: "OCR", Message: "Processing OCR...", Duration: 1500 * time.Millisecond},
		{Name: "Score", Message: "Calculating sustainability score...", Duration: 1000 * time.Millisecond},
		{Name: "Alternatives", Message: "Finding alternatives...", Duration: 1500 * time.Millisecond},
	}
}

var ErrNoStages = errors.New("processing: at least one stage is required")

func validateStages(stages []Stage) (time.Duration, error) {
	if len(stages) == 0 {
		return 0, ErrNoStages
	}
	var total time.Duration
	for i, s := range stages {
		if s.Duration <= 0 {
			return 0, fmt.Errorf("processing: stage %d (%q) has non-positive duration %s", i, s.Name, s.Duration)
		}
		total += s.Duration
	}
	return total, nil
}

// Phase is the label shown while processing. It is selected from the progress
// percentage, not from the stage table.
type Phase uint

const (
	PhaseUploading Phase = iota
	PhaseAnalyzing
	PhaseProcessing
	PhaseCalculating
	PhaseFindingAlternatives
)

func (p Phase) Label() string {
	switch p {
	case PhaseUploading:
		return "Uploading"
	case PhaseAnalyzing:
		return "Analyzing"
	case PhaseProcessing:
		return "Processing"
	case PhaseCalculating:
		return "Calculating score"
	case PhaseFindingAlternatives:
		return "Finding alternatives"
	default:
		return "Unknown"
	}
}

func (p Phase) Message() string {
	switch p {
	case PhaseUploading:
		return "Uploading image..."
	case PhaseAnalyzing:
		return "Analyzing receipt..."
	case PhaseProcessing:
		return "Processing OCR..."
	case PhaseCalculating:
		return "Calculating sustainability score..."
	case PhaseFindingAlternatives:
		return "Finding alternatives..."
	default:
		return ""
	}
}

func (p Phase) String() string { return p.Label() }

// Thresholds are the percentage cut points. Phase cut points are exclusive
// upper bounds of the previous phase; step cut points must be strictly
// exceeded.
//
// The defaults approximate, but intentionally do not equal, the cumulative
// stage weights (14.3/42.9/64.3/78.6).
type Thresholds struct {
	Analyzing           float64
	Processing          float64
	Calculating         float64
	FindingAlternatives float64

	UploadStep  float64
	AnalyzeStep float64
	ScoreStep   float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Analyzing:           15,
		Processing:          40,
		Calculating:         65,
		FindingAlternatives: 85,

		UploadStep:  15,
		AnalyzeStep: 40,
		ScoreStep:   85,
	}
}

func (t Thresholds) phase(percent float64) Phase {
	switch {
	case percent < t.Analyzing:
		return PhaseUploading
	case percent < t.Processing:
		return PhaseAnalyzing
	case percent < t.Calculating:
		return PhaseProcessing
	case percent < t.FindingAlternatives:
		return PhaseCalculating
	default:
		return PhaseFindingAlternatives
	}
}

// Steps are the three nodes of the visual stepper.
type Steps struct {
	Upload  bool
	Analyze bool
	Score   bool
}

func (s Steps) merge(o Steps) Steps {
	return Steps{
		Upload:  s.Upload || o.Upload,
		Analyze: s.Analyze || o.Analyze,
		Score:   s.Score || o.Score,
	}
}

func (t Thresholds) steps(percent float64) Steps {
	return Steps{
		Upload:  percent > t.UploadStep,
		Analyze: percent > t.AnalyzeStep,
		Score:   percent > t.ScoreStep,
	}
}

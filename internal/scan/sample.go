package scan

import "time"

const SampleStoreName = "EcoMart"

// Sample is the placeholder result of every scan. There is no OCR or scoring
// engine, so processing always yields this record under a fresh id.
func Sample(id string, imagePath string, now time.Time) Scan {
	return Scan{
		ID:        id,
		StoreName: SampleStoreName,
		ImagePath: imagePath,
		ScannedAt: now,
		Score:     72,
		Items: []Item{
			{
				Name:                "Organic Bananas",
				Category:            "Produce",
				SustainabilityScore: 85,
				Impact:              "Low carbon footprint, organic farming",
				Alternatives:        []Alternative{},
			},
			{
				Name:                "Plastic Water Bottles (24 pack)",
				Category:            "Beverages",
				SustainabilityScore: 35,
				Impact:              "High plastic waste, carbon emissions from transport",
				Alternatives: []Alternative{
					{
						Name:   "Reusable Water Bottle + Filter",
						Score:  90,
						Reason: "Eliminates single-use plastic, long-term cost savings",
					},
				},
			},
			{
				Name:                "Conventional Beef",
				Category:            "Meat",
				SustainabilityScore: 25,
				Impact:              "High greenhouse gas emissions, land use",
				Alternatives: []Alternative{
					{
						Name:   "Plant-Based Protein",
						Score:  80,
						Reason: "Lower carbon footprint, reduced land use",
					},
					{
						Name:   "Grass-Fed Beef",
						Score:  45,
						Reason: "Better farming practices, still high emissions",
					},
				},
			},
		},
		Recommendations: []string{
			"Consider switching to reusable water bottles",
			"Try plant-based proteins 2-3 times per week",
			"Look for locally sourced produce when possible",
		},
	}
}

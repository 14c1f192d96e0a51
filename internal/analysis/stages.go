package analysis

// Stage is one step of the analysis pipeline. Weights sum to 100; the
// progress reported for a running analysis is the cumulative weight of the
// stages completed so far, which makes progress monotone from 0 to 100.
type Stage struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// Stages lists the pipeline steps in execution order.
var Stages = []Stage{
	{Name: "file_processing", Weight: 15},
	{Name: "sequence_alignment", Weight: 25},
	{Name: "variant_detection", Weight: 30},
	{Name: "clinical_annotation", Weight: 15},
	{Name: "quality_assessment", Weight: 10},
	{Name: "report_generation", Weight: 5},
}

// progressAfter returns the cumulative progress after the stage at index i
// has completed.
func progressAfter(i int) float64 {
	total := 0.0
	for j := 0; j <= i && j < len(Stages); j++ {
		total += Stages[j].Weight
	}
	return total
}

// StageProgress describes one pipeline stage for progress reporting.
type StageProgress struct {
	Name      string  `json:"name"`
	Weight    float64 `json:"weight"`
	Completed bool    `json:"completed"`
}

// StageBreakdown maps an overall progress value back onto the pipeline
// stages for the progress endpoint.
func StageBreakdown(progress float64) []StageProgress {
	breakdown := make([]StageProgress, len(Stages))
	cumulative := 0.0
	for i, stage := range Stages {
		cumulative += stage.Weight
		breakdown[i] = StageProgress{
			Name:      stage.Name,
			Weight:    stage.Weight,
			Completed: progress >= cumulative,
		}
	}
	return breakdown
}

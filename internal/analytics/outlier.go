package analytics

import (
	"math"
	"sort"

	"github.com/siddheshkadane01/FinTrack-AI-Finance-Tracker/internal/models"
)

// Envelope is the robust spending range derived from a historical expense
// sample using the Tukey fence: anything above Q3 + 1.5*IQR is unusual.
type Envelope struct {
	Q1         float64 `json:"q1"`
	Q3         float64 `json:"q3"`
	IQR        float64 `json:"iqr"`
	UpperBound float64 `json:"upper_bound"`
	SampleSize int     `json:"sample_size"`
}

// Outlier is a transaction whose amount exceeds the envelope's upper
// bound, together with its distance above the bound.
type Outlier struct {
	Transaction models.Transaction `json:"transaction"`
	Distance    float64            `json:"distance"`
}

// ComputeEnvelope derives the spending envelope from a sample of expense
// amounts. Returns ok=false on an empty sample, in which case the detector
// degrades to producing no output. Small samples (under 4 points) collapse
// the quartile indices but are still well defined.
func ComputeEnvelope(amounts []float64) (Envelope, bool) {
	n := len(amounts)
	if n == 0 {
		return Envelope{}, false
	}

	sorted := make([]float64, n)
	copy(sorted, amounts)
	sort.Float64s(sorted)

	q1 := sorted[int(math.Floor(float64(n)*0.25))]
	q3Index := int(math.Floor(float64(n) * 0.75))
	if q3Index >= n {
		q3Index = n - 1
	}
	q3 := sorted[q3Index]

	iqr := q3 - q1

	return Envelope{
		Q1:         q1,
		Q3:         q3,
		IQR:        iqr,
		UpperBound: q3 + 1.5*iqr,
		SampleSize: n,
	}, true
}

// DetectOutliers flags current-period expenses above the envelope bound,
// sorted by distance above the bound, most anomalous first, so that
// downstream caps keep the largest deviations.
func DetectOutliers(transactions []models.Transaction, env Envelope) []Outlier {
	var outliers []Outlier

	for i := range transactions {
		txn := transactions[i]
		amount := txn.Amount.InexactFloat64()
		if amount > env.UpperBound {
			outliers = append(outliers, Outlier{
				Transaction: txn,
				Distance:    amount - env.UpperBound,
			})
		}
	}

	sort.SliceStable(outliers, func(i, j int) bool {
		return outliers[i].Distance > outliers[j].Distance
	})

	return outliers
}

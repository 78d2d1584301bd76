// Package rating maps member scores to labels and averages them.
package rating

const (
	MinScore = 1
	MaxScore = 100
)

// Labels from the top band down to the bottom one.
const (
	LabelPerfect  = "Perfect"
	LabelSuperb   = "Superb"
	LabelGreat    = "Great"
	LabelGood     = "Good"
	LabelDecent   = "Decent"
	LabelAverage  = "Average"
	LabelPoor     = "Poor"
	LabelBad      = "Bad"
	LabelTerrible = "Terrible"
	LabelAbysmal  = "Abysmal"
	LabelWTF      = "WTF"
)

type band struct {
	min   int
	label string
}

var bands = []band{
	{100, LabelPerfect},
	{90, LabelSuperb},
	{80, LabelGreat},
	{70, LabelGood},
	{60, LabelDecent},
	{50, LabelAverage},
	{40, LabelPoor},
	{30, LabelBad},
	{20, LabelTerrible},
	{10, LabelAbysmal},
}

// ValidScore reports whether score is inside [MinScore, MaxScore].
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// Label returns the label of the band score falls in. Callers validate the
// score range first.
func Label(score int) string {
	for _, b := range bands {
		if score >= b.min {
			return b.label
		}
	}
	return LabelWTF
}

// AverageOf returns the arithmetic mean of count scores adding up to sum,
// or nil when there are none.
func AverageOf(sum, count int) *float64 {
	if count == 0 {
		return nil
	}
	avg := float64(sum) / float64(count)
	return &avg
}

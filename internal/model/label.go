package model

// Label is a sentiment label. POSITIVE and NEGATIVE come from the model;
// NEUTRAL and ERROR are produced locally for empty input and failed calls.
type Label string

const (
	Positive Label = "POSITIVE"
	Negative Label = "NEGATIVE"
	Neutral  Label = "NEUTRAL"
	Error    Label = "ERROR"
)

// IsPositive reports whether l is the POSITIVE label.
func (l Label) IsPositive() bool {
	return l == Positive
}

func (l Label) String() string {
	return string(l)
}

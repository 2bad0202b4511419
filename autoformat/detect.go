package autoformat

import "github.com/iw2rmb/autolist/internal/grapheme"

// Detection is the result of Classify.
type Detection struct {
	IsList bool
	// NumeralPrefix holds the leading digits as typed, even when IsList is
	// false.
	NumeralPrefix string
}

// Classify reports whether text is an unconverted ordered-list line: one or
// more decimal digits at offset 0, then "." and a single space.
//
// Text starting with anything other than a digit, including the TAB that
// starts every converted item, is never a list.
func Classify(text string) Detection {
	clusters := grapheme.Split(text)

	n := 0
	for n < len(clusters) && grapheme.IsDigit(clusters[n]) {
		n++
	}
	if n == 0 {
		return Detection{}
	}

	d := Detection{NumeralPrefix: grapheme.Join(clusters[:n])}
	if len(clusters) < n+2 {
		return d
	}
	d.IsList = clusters[n] == "." && clusters[n+1] == " "
	return d
}

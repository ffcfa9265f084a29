package pathdata

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

const (
	ringAbsolute = "M217.074 360.93 C145.835 360.93 88.022 303.209 88.022 231.958 88.022 160.578 145.835 102.899 217.074 102.899 288.375 102.899 346.116 160.578 346.116 231.958 346.116 303.209 288.375 360.93 217.074 360.93 M217.074 38.459 C110.278 38.459 23.675 125.084 23.675 231.958 23.675 338.75 110.278 425.348 217.074 425.348 323.916 425.348 410.655 338.75 410.655 231.958 410.655 125.084 323.916 38.459 217.074 38.459 Z"
	ringRelative = "M217.074,360.93c-71.239,0-129.052-57.721-129.052-128.972c0-71.38,57.813-129.059,129.052-129.059c71.301,0,129.042,57.679,129.042,129.059C346.116,303.209,288.375,360.93,217.074,360.93 M217.074,38.459c-106.796,0-193.399,86.625-193.399,193.499c0,106.792,86.603,193.39,193.399,193.39c106.842,0,193.581-86.598,193.581-193.39C410.655,125.084,323.916,38.459,217.074,38.459z"

	sketchFormat = "M49.231,365 C49.231,365 42.771,306.868 98.187,294.192 C153.604,281.515 170.121,279.704 173.864,267.482 " +
		"C177.606,255.26 178.315,231.869 178.315,231.869 C178.315,231.869 160.526,215.862 152.719,195.979 " +
		"C144.912,176.095 142.703,164.818 142.703,164.818 C142.703,164.818 136.176,163.653 133.939,152.019 " +
		"C131.702,140.386 123.234,128.367 124.897,120.024 C126.867,110.139 133.383,116.129 133.383,116.129 " +
		"C133.383,116.129 133.073,77.174 154.806,56.45 C159.22,52.241 173.586,53.807 173.586,53.807 " +
		"C173.586,53.807 175.811,36 211.146,36 C241.413,36 262.37,47.578 275.555,72.865 C288.739,98.152 284.875,115.572 284.875,115.572 " +
		"C284.875,115.572 294.131,110.734 294.056,124.475 C293.981,138.216 286.348,146.528 285.431,151.88 " +
		"C284.515,157.233 283.719,164.773 276.667,165.374 C273.99,177.367 273.57,185.877 263.313,203.212 " +
		"C253.056,220.548 240.498,231.591 240.498,231.591 C240.498,231.591 240.289,257.337 244.811,267.204 " +
		"C249.333,277.071 318.742,294.869 336.207,307.685 C353.671,320.501 351.927,364.999 351.927,364.999 L49.231,365 Z"

	appleSymbolsFormat = "M 49.231 365 C 49.231 365 42.771 306.868 98.187 294.192 C 153.604 281.515 170.121 279.704 173.864 267.482 " +
		"C 177.606 255.26 178.315 231.869 178.315 231.869 C 178.315 231.869 160.526 215.862 152.719 195.979 " +
		"C 144.912 176.095 142.703 164.818 142.703 164.818 C 142.703 164.818 136.176 163.653 133.939 152.019 " +
		"C 131.702 140.386 123.234 128.367 124.897 120.024 C 126.867 110.139 133.383 116.129 133.383 116.129 " +
		"C 133.383 116.129 133.073 77.174 154.806 56.45 C 159.22 52.241 173.586 53.807 173.586 53.807 " +
		"C 173.586 53.807 175.811 36 211.146 36 C 241.413 36 262.37 47.578 275.555 72.865 C 288.739 98.152 284.875 115.572 284.875 115.572 " +
		"C 284.875 115.572 294.131 110.734 294.056 124.475 C 293.981 138.216 286.348 146.528 285.431 151.88 " +
		"C 284.515 157.233 283.719 164.773 276.667 165.374 C 273.99 177.367 273.57 185.877 263.313 203.212 " +
		"C 253.056 220.548 240.498 231.591 240.498 231.591 C 240.498 231.591 240.289 257.337 244.811 267.204 " +
		"C 249.333 277.071 318.742 294.869 336.207 307.685 C 353.671 320.501 351.927 364.999 351.927 364.999 L 49.231 365 Z"

	pixelmatorFormat = "M49.231 365 C49.231 365 42.771 306.868 98.187 294.192 153.604 281.515 170.121 279.704 173.864 267.482 " +
		"177.606 255.26 178.315 231.869 178.315 231.869 178.315 231.869 160.526 215.862 152.719 195.979 " +
		"144.912 176.095 142.703 164.818 142.703 164.818 142.703 164.818 136.176 163.653 133.939 152.019 " +
		"131.702 140.386 123.234 128.367 124.897 120.024 126.867 110.139 133.383 116.129 133.383 116.129 " +
		"133.383 116.129 133.073 77.174 154.806 56.45 159.22 52.241 173.586 53.807 173.586 53.807 173.586 53.807 " +
		"175.811 36 211.146 36 241.413 36 262.37 47.578 275.555 72.865 288.739 98.152 284.875 115.572 284.875 115.572 " +
		"284.875 115.572 294.131 110.734 294.056 124.475 293.981 138.216 286.348 146.528 285.431 151.88 " +
		"284.515 157.233 283.719 164.773 276.667 165.374 273.99 177.367 273.57 185.877 263.313 203.212 " +
		"253.056 220.548 240.498 231.591 240.498 231.591 240.498 231.591 240.289 257.337 244.811 267.204 " +
		"249.333 277.071 318.742 294.869 336.207 307.685 353.671 320.501 351.927 364.999 351.927 364.999 L49.231 365 Z"
)

func TestEquivalentRelativePath(t *testing.T) {
	abs := MustParse(ringAbsolute)
	rel := MustParse(ringRelative)
	test.T(t, abs.Len(), rel.Len())
	test.That(t, Equivalent(abs, rel))
	test.That(t, !abs.Equals(rel))

	sa, sr := abs.Scanner(), rel.Scanner()
	for sa.Scan() && sr.Scan() {
		test.T(t, sa.Kind(), sr.Kind(), sa.Index())
		test.That(t, sa.End().Equals(sr.End(), Tolerance), sa.Index())
	}
}

func TestEquivalentFormats(t *testing.T) {
	sketch := MustParse(sketchFormat)
	apple := MustParse(appleSymbolsFormat)
	pixelmator := MustParse(pixelmatorFormat)

	test.T(t, sketch.Len(), apple.Len())
	test.T(t, apple.Len(), pixelmator.Len())
	for i := 0; i < sketch.Len(); i++ {
		test.T(t, sketch.At(i).Kind(), apple.At(i).Kind())
		test.T(t, apple.At(i).Kind(), pixelmator.At(i).Kind())
	}

	test.That(t, Equivalent(sketch, apple))
	test.That(t, Equivalent(apple, pixelmator))
	test.That(t, Equivalent(pixelmator, sketch))
	test.That(t, sketch.Equals(apple))
	test.That(t, apple.Equals(pixelmator))
}

func TestEquivalent(t *testing.T) {
	var tts = []struct {
		p, q       string
		equivalent bool
	}{
		{"M0 0L10 10", "m0 0l10 10", true},
		{"M5 5L10 10L20 10", "m5 5l5 5 10 0", true},
		{"M0 0L10 10", "M0 0L10.005 10", true},
		{"M0 0L10 10", "M0 0L10.01 10", true},
		{"M0 0L10 10", "M0 0L10.02 10", false},
		{"M0 0L10 0", "M0 0H10", false},
		{"M0 0L10 0", "M0 0L10 0z", false},
		{"M0 0H10V10", "m0 0h10v10", true},
		{"M10 10A5 5 0 1 0 20 10", "m10 10a5 5 0 1 0 10 0", true},
		{"M10 10A5 5 0 1 0 20 10", "m10 10a5 5 0 0 0 10 0", false},
		{"M0 0L10 0zm5 5", "M0 0L10 0ZM5 5", true},
		{"M0 0C0 10 10 10 10 0S20 -10 20 0", "m0 0c0 10 10 10 10 0s10 -10 10 0", true},
	}
	for _, tt := range tts {
		t.Run(tt.p+"|"+tt.q, func(t *testing.T) {
			p, q := MustParse(tt.p), MustParse(tt.q)
			test.T(t, Equivalent(p, q), tt.equivalent)
			test.T(t, Equivalent(q, p), tt.equivalent)
		})
	}

	p, q := MustParse("M0 0L10 10"), MustParse("M0 0L10.005 10")
	test.That(t, EquivalentTolerance(p, q, 0.01))
	test.That(t, !EquivalentTolerance(p, q, 0.001))
	test.That(t, Equivalent(Path{}, Path{}))
}

func TestEqualStrings(t *testing.T) {
	equal, err := EqualStrings("M0 0L5 5", "M0,0 L5,5")
	test.Error(t, err)
	test.That(t, equal)

	equal, err = EqualStrings("M0 0L5 5", "m0 0l5 5")
	test.Error(t, err)
	test.That(t, !equal)

	_, err = EqualStrings("M0 0", "M0")
	var arityErr *ArityError
	test.That(t, errors.As(err, &arityErr))

	_, err = EqualStrings("", "M0 0")
	test.That(t, errors.Is(err, ErrEmptyInput))
}

func TestEquivalentRandomAbsolute(t *testing.T) {
	for i := 0; i < 100; i++ {
		p := randomPath(20, false)
		test.That(t, EquivalentTolerance(p, p.Absolute(), 0.0), p.String())
	}
}

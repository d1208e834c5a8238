package cpolar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Recognized grammars, applied in order after whitespace stripping:
// pure real "a", pure imaginary "[b]i", rectangular pair "a±[b]i".
// An omitted coefficient before i means 1.
var (
	reReal = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)$`)
	reImag = regexp.MustCompile(`^([+-]?)(\d+(?:\.\d+)?)?i$`)
	rePair = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)([+-])(\d+(?:\.\d+)?)?i$`)
)

// ParseComplex parses the textual forms "a+bi", "a-bi", "bi", and "a",
// with optional leading signs and an omitted coefficient 1 before i.
// Whitespace is stripped before matching. Text that matches none of the
// recognized grammars returns an error wrapping ErrParse.
// Complexity: O(len(s)).
func ParseComplex(s string) (Complex, error) {
	t := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, s)

	if m := reReal.FindStringSubmatch(t); m != nil {
		re, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Complex{}, fmt.Errorf("cpolar: cannot parse %q: %w", s, ErrParse)
		}

		return Complex{Re: re}, nil
	}

	if m := reImag.FindStringSubmatch(t); m != nil {
		im, err := imagCoefficient(m[1], m[2])
		if err != nil {
			return Complex{}, fmt.Errorf("cpolar: cannot parse %q: %w", s, ErrParse)
		}

		return Complex{Im: im}, nil
	}

	if m := rePair.FindStringSubmatch(t); m != nil {
		re, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return Complex{}, fmt.Errorf("cpolar: cannot parse %q: %w", s, ErrParse)
		}
		im, err := imagCoefficient(m[2], m[3])
		if err != nil {
			return Complex{}, fmt.Errorf("cpolar: cannot parse %q: %w", s, ErrParse)
		}

		return Complex{Re: re, Im: im}, nil
	}

	return Complex{}, fmt.Errorf("cpolar: cannot parse %q: %w", s, ErrParse)
}

// imagCoefficient resolves the signed coefficient before i, treating an
// omitted magnitude as 1.
func imagCoefficient(sign, digits string) (float64, error) {
	v := 1.0
	if digits != "" {
		parsed, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return 0, err
		}
		v = parsed
	}
	if sign == "-" {
		v = -v
	}

	return v, nil
}

// String renders c in the same rectangular grammar ParseComplex accepts:
// "a", "bi", or "a±bi". A zero imaginary part collapses to the pure-real
// form so that ParseComplex(c.String()) round-trips.
func (c Complex) String() string {
	re := strconv.FormatFloat(c.Re, 'g', -1, 64)
	im := strconv.FormatFloat(c.Im, 'g', -1, 64)
	switch {
	case c.Im == 0:
		return re
	case c.Re == 0:
		return im + "i"
	case c.Im < 0:
		return re + im + "i"
	default:
		return re + "+" + im + "i"
	}
}

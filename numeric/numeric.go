// Package numeric provides integer helpers that come up repeatedly in puzzle solutions.
package numeric

import (
	"golang.org/x/exp/constraints"
)

// Number is any integer or float type
type Number interface {
	constraints.Integer | constraints.Float
}

// Abs returns the absolute value of v
func Abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign[T constraints.Signed | constraints.Float](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// GCD returns the greatest common divisor, always non-negative
func GCD[T constraints.Integer](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of all values, 0 when called without values
func LCM[T constraints.Integer](values ...T) T {
	if len(values) == 0 {
		return 0
	}
	result := values[0]
	for _, v := range values[1:] {
		if result == 0 || v == 0 {
			return 0
		}
		result = result / GCD(result, v) * v
	}
	if result < 0 {
		return -result
	}
	return result
}

// Mod returns a modulo m in the range [0, |m|)
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		if m < 0 {
			return r - m
		}
		return r + m
	}
	return r
}

// Sum adds all values
func Sum[T Number](values ...T) T {
	var result T
	for _, v := range values {
		result += v
	}
	return result
}

// Product multiplies all values, 1 for no values
func Product[T Number](values ...T) T {
	var result T = 1
	for _, v := range values {
		result *= v
	}
	return result
}

// MinMax returns the smallest and the largest value, zeros for no values
func MinMax[T constraints.Ordered](values ...T) (T, T) {
	var lo, hi T
	for i, v := range values {
		if i == 0 || v < lo {
			lo = v
		}
		if i == 0 || v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Pow returns base^exp using binary exponentiation, exp must not be negative
func Pow[T constraints.Integer](base, exp T) T {
	var result T = 1
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// Digits returns the decimal digits of |v|, most significant first
func Digits[T constraints.Integer](v T) []T {
	if v == 0 {
		return []T{0}
	}
	var result []T
	for ; v != 0; v /= 10 {
		digit := v % 10
		if digit < 0 {
			digit = -digit
		}
		result = append(result, digit)
	}
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	return result
}

// Concat appends the decimal digits of b to a, e.g. Concat(12, 345) == 12345.
// The result wraps on overflow; b must not be negative.
func Concat[T constraints.Integer](a, b T) T {
	result := a * 10
	for rest := b / 10; rest != 0; rest /= 10 {
		result *= 10
	}
	return result + b
}

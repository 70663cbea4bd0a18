// Package cpf validates and masks Brazilian CPF numbers.
package cpf

import "strings"

// Normalize strips the usual punctuation ("123.456.789-09" → "12345678909").
func Normalize(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Valid reports whether cpf has valid check digits. Accepts punctuated or
// bare input. Sequences of a single repeated digit are rejected even though
// their check digits work out.
func Valid(cpf string) bool {
	digits := Normalize(cpf)
	if len(digits) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	return checkDigit(digits, 9) == int(digits[9]-'0') &&
		checkDigit(digits, 10) == int(digits[10]-'0')
}

// checkDigit computes the verifier for the first n digits. Weights run from
// n+1 down to 2; the result is 0 when the mod-11 remainder is below 2.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

// Mask hides all but the two check digits, e.g. "***.***.***-09".
// Input that is not 11 digits masks to the empty string.
func Mask(cpf string) string {
	digits := Normalize(cpf)
	if len(digits) != 11 {
		return ""
	}
	return "***.***.***-" + digits[9:]
}

// Package brdoc formats and validates Brazilian documents (CPF/CNPJ),
// postal codes (CEP), mobile phone numbers and day-first dates.
//
// The Format* functions are cosmetic only: they strip non-digit input,
// re-insert separators positionally and truncate to the mask length.
// They never fail and are idempotent under their own masks.
package brdoc

import "strings"

const (
	cpfDigits  = 11
	cnpjDigits = 14
	cepDigits  = 8
	dateDigits = 8
)

// StripDigits removes every non-digit rune from s.
func StripDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// applyMask emits digits, inserting seps[i] before the i-th digit.
// A separator only appears once the digit after it has been typed,
// so partial input renders naturally while the user is still typing.
func applyMask(digits string, maxLen int, seps map[int]string) string {
	if len(digits) > maxLen {
		digits = digits[:maxLen]
	}
	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		if sep, ok := seps[i]; ok {
			b.WriteString(sep)
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

// FormatDocument masks a CPF (000.000.000-00) when the stripped input has
// up to 11 digits, otherwise a CNPJ (00.000.000/0000-00). No checksum is
// applied here.
func FormatDocument(raw string) string {
	digits := StripDigits(raw)
	if len(digits) <= cpfDigits {
		return applyMask(digits, cpfDigits, map[int]string{3: ".", 6: ".", 9: "-"})
	}
	return applyMask(digits, cnpjDigits, map[int]string{2: ".", 5: ".", 8: "/", 12: "-"})
}

// FormatCEP masks a postal code as 00000-000.
func FormatCEP(raw string) string {
	return applyMask(StripDigits(raw), cepDigits, map[int]string{5: "-"})
}

// FormatPhone masks a mobile number: 10 digits as (00) 0000-0000,
// 11 digits as (00) 00000-0000.
func FormatPhone(raw string) string {
	digits := StripDigits(raw)
	// the area-code parentheses only close once a third digit exists
	if len(digits) <= 2 {
		return digits
	}
	if len(digits) <= 10 {
		return applyMask(digits, 10, map[int]string{0: "(", 2: ") ", 6: "-"})
	}
	return applyMask(digits, 11, map[int]string{0: "(", 2: ") ", 7: "-"})
}

// FormatDateInput inserts slashes to build DD/MM/YYYY as digits are
// typed. Calendar correctness is not checked.
func FormatDateInput(raw string) string {
	return applyMask(StripDigits(raw), dateDigits, map[int]string{2: "/", 4: "/"})
}

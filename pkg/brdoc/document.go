package brdoc

// ValidCPF reports whether s carries a CPF with valid check digits.
// Separators are ignored; repeated-digit sequences such as 00000000000
// are rejected even though their checksum holds.
func ValidCPF(s string) bool {
	cpf := StripDigits(s)
	if len(cpf) != cpfDigits || allSameDigit(cpf) {
		return false
	}

	sum := 0
	for i := 0; i < 9; i++ {
		sum += int(cpf[i]-'0') * (10 - i)
	}
	if int(cpf[9]-'0') != checkDigit(sum) {
		return false
	}

	sum = 0
	for i := 0; i < 10; i++ {
		sum += int(cpf[i]-'0') * (11 - i)
	}
	return int(cpf[10]-'0') == checkDigit(sum)
}

var (
	cnpjWeightsFirst  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeightsSecond = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidCNPJ reports whether s carries a CNPJ with valid check digits.
func ValidCNPJ(s string) bool {
	cnpj := StripDigits(s)
	if len(cnpj) != cnpjDigits || allSameDigit(cnpj) {
		return false
	}

	sum := 0
	for i, w := range cnpjWeightsFirst {
		sum += int(cnpj[i]-'0') * w
	}
	if int(cnpj[12]-'0') != checkDigit(sum) {
		return false
	}

	sum = 0
	for i, w := range cnpjWeightsSecond {
		sum += int(cnpj[i]-'0') * w
	}
	return int(cnpj[13]-'0') == checkDigit(sum)
}

// ValidDocument accepts an 11-digit CPF or a 14-digit CNPJ; any other
// stripped length is invalid.
func ValidDocument(s string) bool {
	switch len(StripDigits(s)) {
	case cpfDigits:
		return ValidCPF(s)
	case cnpjDigits:
		return ValidCNPJ(s)
	default:
		return false
	}
}

func checkDigit(sum int) int {
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}

func allSameDigit(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// Package extract derives structured certificate fields from OCR text using
// rule-based pattern matching.
package extract

import (
	"regexp"
	"strings"
)

// Certificate types as they appear in the response contract.
const (
	TypeBirth    = "Nascimento"
	TypeMarriage = "Casamento"
	TypeDeath    = "Óbito"
	TypeUnknown  = "Desconhecido"
)

// Fields is the record extracted from the concatenated page text. Absent
// matches are nil, never errors; the JSON shape is part of the public
// response contract.
type Fields struct {
	Name            *string `json:"nome"`
	CPF             *string `json:"cpf"`
	BirthDate       *string `json:"dataNascimento"`
	CertificateType string  `json:"tipoCertidao"`
}

var (
	// CPF: 3+3+3 digit groups separated by dots or spaces, then 2 check
	// digits after a dash or space. Normalized to digits only (length 11).
	reCPF       = regexp.MustCompile(`\d{3}[.\s]?\d{3}[.\s]?\d{3}[-\s]?\d{2}`)
	reBirthDate = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	reNonDigit  = regexp.MustCompile(`[^\d]`)
)

// ExtractFields is pure and total: any input, including the empty string,
// yields a well-formed record.
func ExtractFields(text string) Fields {
	return Fields{
		Name:            extractName(text),
		CPF:             extractCPF(text),
		BirthDate:       extractBirthDate(text),
		CertificateType: extractCertificateType(text),
	}
}

func extractCPF(text string) *string {
	m := reCPF.FindString(text)
	if m == "" {
		return nil
	}
	digits := reNonDigit.ReplaceAllString(m, "")
	return &digits
}

func extractBirthDate(text string) *string {
	m := reBirthDate.FindString(text)
	if m == "" {
		return nil
	}
	return &m
}

// extractName returns the value after the first colon on the first line that
// mentions "nome" but not "assinatura" (signature lines also carry "nome" and
// must be skipped).
func extractName(text string) *string {
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if !strings.Contains(lower, "nome") || strings.Contains(lower, "assinatura") {
			continue
		}
		if _, rest, ok := strings.Cut(line, ":"); ok {
			name := strings.TrimSpace(rest)
			return &name
		}
	}
	return nil
}

// extractCertificateType checks the type keywords in priority order; the
// first match wins.
func extractCertificateType(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "nascimento"):
		return TypeBirth
	case strings.Contains(lower, "casamento"):
		return TypeMarriage
	case strings.Contains(lower, "óbito"), strings.Contains(lower, "obito"):
		return TypeDeath
	default:
		return TypeUnknown
	}
}

package extract

import (
	"encoding/json"
	"testing"
)

func marshalDoc(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func validDoc() map[string]any {
	return map[string]any{
		"arquivo": "certidao.pdf",
		"paginas": []map[string]any{
			{"pagina": 1, "texto": "CERTIDÃO DE NASCIMENTO"},
		},
		"dadosExtraidos": map[string]any{
			"nome":           "João da Silva",
			"cpf":            "12345678900",
			"dataNascimento": "12/05/1990",
			"tipoCertidao":   TypeBirth,
		},
	}
}

func TestResultSchemaAcceptsValidDocument(t *testing.T) {
	if err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), marshalDoc(t, validDoc())); err != nil {
		t.Fatalf("valid document rejected: %v", err)
	}
}

func TestResultSchemaAcceptsNullFields(t *testing.T) {
	doc := validDoc()
	doc["dadosExtraidos"] = map[string]any{
		"nome":           nil,
		"cpf":            nil,
		"dataNascimento": nil,
		"tipoCertidao":   TypeUnknown,
	}
	if err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), marshalDoc(t, doc)); err != nil {
		t.Fatalf("null fields rejected: %v", err)
	}
}

func TestResultSchemaRejectsBadDocuments(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{"short cpf", func(doc map[string]any) {
			doc["dadosExtraidos"].(map[string]any)["cpf"] = "123"
		}},
		{"unknown type", func(doc map[string]any) {
			doc["dadosExtraidos"].(map[string]any)["tipoCertidao"] = "Divórcio"
		}},
		{"missing file", func(doc map[string]any) {
			delete(doc, "arquivo")
		}},
		{"zero page number", func(doc map[string]any) {
			doc["paginas"] = []map[string]any{{"pagina": 0, "texto": "x"}}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := validDoc()
			tc.mutate(doc)
			if err := ValidateJSONAgainstSchema(BuildResultJSONSchema(), marshalDoc(t, doc)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

package extract

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) for the
// scan response document as a generic map. It pins the public contract:
// consumers parse these exact keys, so any drift should fail loudly in tests
// and in the runocr debugging tool.
func BuildResultJSONSchema() map[string]any {
	nullableString := map[string]any{"type": []string{"string", "null"}}

	fields := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"nome": nullableString,
			"cpf": map[string]any{
				"type":    []string{"string", "null"},
				"pattern": `^\d{11}$`,
			},
			"dataNascimento": map[string]any{
				"type":    []string{"string", "null"},
				"pattern": `^\d{2}/\d{2}/\d{4}$`,
			},
			"tipoCertidao": map[string]any{
				"type": "string",
				"enum": []string{TypeBirth, TypeMarriage, TypeDeath, TypeUnknown},
			},
		},
		"required": []string{"nome", "cpf", "dataNascimento", "tipoCertidao"},
	}

	page := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"pagina": map[string]any{"type": "integer", "minimum": 1},
			"texto":  map[string]any{"type": "string"},
		},
		"required": []string{"pagina", "texto"},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"arquivo":        map[string]any{"type": "string", "minLength": 1},
			"paginas":        map[string]any{"type": "array", "items": page},
			"dadosExtraidos": fields,
		},
		"required": []string{"arquivo", "paginas", "dadosExtraidos"},
	}
}

package extract

import "testing"

func strval(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestExtractFieldsBirthCertificate(t *testing.T) {
	text := "CERTIDÃO DE NASCIMENTO\nNome: João da Silva\nCPF: 123.456.789-00\nData: 12/05/1990\n"

	got := ExtractFields(text)

	if got.Name == nil || *got.Name != "João da Silva" {
		t.Errorf("name = %s, want João da Silva", strval(got.Name))
	}
	if got.CPF == nil || *got.CPF != "12345678900" {
		t.Errorf("cpf = %s, want 12345678900", strval(got.CPF))
	}
	if got.BirthDate == nil || *got.BirthDate != "12/05/1990" {
		t.Errorf("birth date = %s, want 12/05/1990", strval(got.BirthDate))
	}
	if got.CertificateType != TypeBirth {
		t.Errorf("type = %s, want %s", got.CertificateType, TypeBirth)
	}
}

func TestExtractCPFVariants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"dotted", "CPF 123.456.789-00", "12345678900"},
		{"spaced", "CPF 123 456 789 00", "12345678900"},
		{"bare", "98765432100", "98765432100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ExtractFields(tc.in)
			if got.CPF == nil || *got.CPF != tc.want {
				t.Fatalf("cpf = %s, want %s", strval(got.CPF), tc.want)
			}
		})
	}
}

func TestExtractNameSkipsSignatureLines(t *testing.T) {
	text := "Assinatura do declarante nome: rabisco\nNome do registrado: Maria Souza"

	got := ExtractFields(text)
	if got.Name == nil || *got.Name != "Maria Souza" {
		t.Fatalf("name = %s, want Maria Souza", strval(got.Name))
	}
}

func TestExtractNameRequiresColon(t *testing.T) {
	got := ExtractFields("nome do pai ilegível\nsem marcador")
	if got.Name != nil {
		t.Fatalf("name = %s, want nil", strval(got.Name))
	}
}

func TestExtractCertificateType(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"certidão de nascimento", TypeBirth},
		{"CERTIDÃO DE CASAMENTO", TypeMarriage},
		{"certidão de óbito", TypeDeath},
		{"certidao de obito", TypeDeath},
		{"nascimento e casamento", TypeBirth}, // first keyword wins
		{"documento qualquer", TypeUnknown},
		{"", TypeUnknown},
	}
	for _, tc := range cases {
		if got := extractCertificateType(tc.in); got != tc.want {
			t.Errorf("extractCertificateType(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestExtractFieldsEmptyInput(t *testing.T) {
	got := ExtractFields("")

	if got.Name != nil || got.CPF != nil || got.BirthDate != nil {
		t.Fatalf("expected all nil fields, got %+v", got)
	}
	if got.CertificateType != TypeUnknown {
		t.Fatalf("type = %s, want %s", got.CertificateType, TypeUnknown)
	}
}

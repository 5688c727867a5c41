package ocr

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"crlf", "linha um\r\nlinha dois\r", "linha um\nlinha dois"},
		{"tabs and runs", "Nome:\t\tJoão   da  Silva", "Nome: João da Silva"},
		{"box noise", "texto\n_____\nmais texto", "texto\n\nmais texto"},
		{"blank collapse", "a\n\n\n\n\nb", "a\n\nb"},
		{"trailing spaces", "linha   \noutra ", "linha\noutra"},
		{"keeps line breaks", "Nome: Ana\nCPF: 1", "Nome: Ana\nCPF: 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

package symbol

import "testing"

func TestNormalize_TableDriven(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "numeric gets TW suffix", in: "2330", want: "2330.TW"},
		{name: "already suffixed TW", in: "2330.TW", want: "2330.TW"},
		{name: "already suffixed TWO", in: "6488.TWO", want: "6488.TWO"},
		{name: "lowercase suffix", in: "2330.tw", want: "2330.TW"},
		{name: "us ticker uppercased", in: "aapl", want: "AAPL"},
		{name: "us ticker unchanged", in: "SPY", want: "SPY"},
		{name: "whitespace trimmed", in: "  0050 ", want: "0050.TW"},
		{name: "empty string", in: "", want: ""},
		{name: "whitespace only", in: "   ", want: ""},
		{name: "digit prefix mixed", in: "00878", want: "00878.TW"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.in); got != tc.want {
				t.Fatalf("Normalize(%q)=%q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{"2330", "0050", "aapl", "6488.two", "", "9910.TW"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}

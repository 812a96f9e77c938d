package problemgen

import "testing"

func TestCheckAnswer_Integer(t *testing.T) {
	q := &Question{Type: TypeAddition, Text: "1,200 + 34 =", Answer: "1234", Operands: []string{"1200", "34"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"1234", true},
		{" 1234 ", true},
		{"1,234", true},
		{"01234", true},
		{"1234.0", true},
		{"1235", false},
		{"", false},
		{"   ", false},
		{"abc", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 1234) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Decimal(t *testing.T) {
	q := &Question{Type: TypeMultiplyByPowerOf10, Text: "4.2 × 100 =", Answer: "420", Operands: []string{"4.2", "100"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"420", true},
		{"420.0", true},
		{"420.00", true},
		{"42", false},
		{"4200", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 420) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Fraction(t *testing.T) {
	q := &Question{Type: TypeFractionAddition, Text: "1/4 + 1/4 =", Answer: "1/2", Operands: []string{"1/4", "1/4"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"1/2", true},
		{"2/4", true},
		{" 3 / 6 ", true},
		{"0.5", false},
		{"1/3", false},
		{"1/0", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 1/2) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_FractionLargeInput(t *testing.T) {
	q := &Question{Type: TypeFractionMultiplication, Text: "1/2 × 2/3 =", Answer: "1/3", Operands: []string{"1/2", "2/3"}}

	for _, input := range []string{
		"6148914691236517206/2",
		"12297829382473034412/4",
		"3074457345618258603 1/2",
	} {
		if CheckAnswer(input, q) {
			t.Errorf("CheckAnswer(%q, 1/3) = true, want false", input)
		}
	}
}

func TestCheckAnswer_MixedNumber(t *testing.T) {
	q := &Question{Type: TypeMixedNumberAddition, Text: "1 1/2 + 1/4 =", Answer: "1 3/4", Operands: []string{"1 1/2", "1/4"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"1 3/4", true},
		{"7/4", true},
		{"1  6/8", true},
		{"1 1/4", false},
		{"1.75", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 1 3/4) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_Remainder(t *testing.T) {
	q := &Question{Type: TypeDivisionWithRemainder, Text: "63 ÷ 5 =", Answer: "12 r 3", Operands: []string{"63", "5"}}

	tests := []struct {
		input string
		want  bool
	}{
		{"12 r 3", true},
		{"12r3", true},
		{"12 R 3", true},
		{"12 rem 3", true},
		{"12 remainder 3", true},
		{"12.6", true},
		{"12 3/5", true},
		{"63/5", true},
		{"12 r 2", false},
		{"13 r 3", false},
		{"12.5", false},
		{"12", false},
	}

	for _, tc := range tests {
		got := CheckAnswer(tc.input, q)
		if got != tc.want {
			t.Errorf("CheckAnswer(%q, 12 r 3) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestCheckAnswer_RemainderFromText(t *testing.T) {
	q := &Question{Type: TypeDivisionWithRemainder, Text: "1,003 ÷ 4 =", Answer: "250 r 3"}
	if !CheckAnswer("250.75", q) {
		t.Error("expected 250.75 to match 1003 ÷ 4 when operands are absent")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"3.50", "3.5"},
		{"007", "7"},
		{"1,000", "1000"},
		{" 12  r  3 ", "12 r 3"},
	}
	for _, tc := range tests {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

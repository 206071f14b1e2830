package stockmarket

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{money: M(100, "GBP"), want: "£100.00"},
		{money: M(0, "GBP"), want: "£0.00"},
		{money: M(1234.5, "GBP"), want: "£1,234.50"},
		{money: M(60, "EUR"), want: "€60.00"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("String(%v) = %q, want %q", tc.money.value, got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := M(100, "GBP")
	b := M(10.5, "GBP")

	if got := a.Add(b); !got.Equal(M(110.5, "GBP")) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); !got.Equal(M(89.5, "GBP")) {
		t.Errorf("Sub = %s", got)
	}
	if got := a.Mul(Q(3)); !got.Equal(M(300, "GBP")) {
		t.Errorf("Mul = %s", got)
	}
	if got := a.Div(Q(4)); !got.Equal(M(25, "GBP")) {
		t.Errorf("Div = %s", got)
	}
	if got := b.DivPrice(a); !got.Equal(Q(0.105)) {
		t.Errorf("DivPrice = %s", got)
	}

	// the "" currency is weak: it adopts the other operand's currency.
	var zero Money
	if got := zero.Add(a); got.Currency() != "GBP" {
		t.Errorf("weak currency: got %q", got.Currency())
	}
}

func TestPercent_Mul(t *testing.T) {
	// The preferred-dividend formula applies the percentage at face
	// value: 2% of par 100 contributes 200, not 2.
	got := P(2).Mul(M(100, "GBP"))
	if !got.Equal(M(200, "GBP")) {
		t.Errorf("P(2).Mul(100) = %s, want 200", got)
	}
	if got := P(2).String(); got != "2%" {
		t.Errorf("P(2).String() = %q, want 2%%", got)
	}
}

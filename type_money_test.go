package pnl

import "testing"

func TestMoney_WeakCurrency(t *testing.T) {
	var zero Money // currency-less

	got := zero.Add(USD(10))
	if got.Currency() != "USD" {
		t.Errorf("zero.Add(USD).Currency() = %q, want USD", got.Currency())
	}
	if !got.Equal(USD(10)) {
		t.Errorf("zero.Add(USD(10)) = %s, want %s", got, USD(10))
	}
}

func TestMoney_MismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR should panic")
		}
	}()
	_ = USD(1).Add(M(1, "EUR"))
}

func TestMoney_Arithmetic(t *testing.T) {
	if got, want := USD(110).Sub(USD(100)).Mul(Q(10)), USD(100); !got.Equal(want) {
		t.Errorf("(110-100)*10 = %s, want %s", got, want)
	}
	if got, want := USD(3000).MulRate(R(0.02)), USD(60); !got.Equal(want) {
		t.Errorf("3000*0.02 = %s, want %s", got, want)
	}
	if got, want := USD(5).Neg(), USD(-5); !got.Equal(want) {
		t.Errorf("Neg(5) = %s, want %s", got, want)
	}
}

func TestMoney_SignedString(t *testing.T) {
	for _, tc := range []struct {
		in   Money
		want string
	}{
		{USD(0), "-"},
		{USD(5), "+$5.00"},
		{USD(-5), "-$5.00"},
	} {
		if got := tc.in.SignedString(); got != tc.want {
			t.Errorf("SignedString(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRate_Percent(t *testing.T) {
	if got, want := R(0.02).Percent(), "2%"; got != want {
		t.Errorf("R(0.02).Percent() = %q, want %q", got, want)
	}
}

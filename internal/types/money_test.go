package types

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{4500, "€45.00"},
		{12550, "€125.50"},
		{5, "€0.05"},
		{0, "€0.00"},
		{-1500, "-€15.00"},
	}
	for _, tt := range tests {
		if got := EUR(tt.cents).String(); got != tt.want {
			t.Errorf("EUR(%d).String() = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestMoneyPercent(t *testing.T) {
	tests := []struct {
		cents int64
		pct   int64
		want  int64
	}{
		{4500, 20, 900},
		{4500, 15, 675},
		{4500, 25, 1125},
		{12000, 20, 2400},
		{0, 25, 0},
	}
	for _, tt := range tests {
		if got := EUR(tt.cents).Percent(tt.pct).Amount; got != tt.want {
			t.Errorf("EUR(%d).Percent(%d) = %d, want %d", tt.cents, tt.pct, got, tt.want)
		}
	}
}

func TestMoneyDivideBy(t *testing.T) {
	tests := []struct {
		cents int64
		n     int64
		want  int64
	}{
		{10000, 4, 2500},
		{10000, 3, 3333}, // 3333.33 rounds down
		{10001, 3, 3334}, // 3333.67 rounds up
		{100, 8, 13},     // 12.5 rounds half-up
		{4500, 1, 4500},
	}
	for _, tt := range tests {
		if got := EUR(tt.cents).DivideBy(tt.n).Amount; got != tt.want {
			t.Errorf("EUR(%d).DivideBy(%d) = %d, want %d", tt.cents, tt.n, got, tt.want)
		}
	}
}

func TestMoneyAddKeepsCurrency(t *testing.T) {
	sum := EUR(4500).Add(EUR(900))
	if sum.Amount != 5400 || sum.Currency != "EUR" {
		t.Fatalf("got %+v", sum)
	}
}

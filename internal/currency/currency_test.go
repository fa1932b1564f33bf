package currency

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"timetobuy/internal/testutil"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		code   string
		amount float64
		want   string
	}{
		{"USD", 1234.5, "$1,234.50"},
		{"usd", 0, "$0.00"},
		{"", 99.999, "$100.00"},
		{"EUR", 1000000, "€1,000,000.00"},
		{"JPY", 1234.5, "¥1,235"},
		{"GBP", -12.3, "-£12.30"},
		{"XYZ", 5, "XYZ 5.00"},
		{"USD", 1e14, "$100,000,000,000,000.00"},
		{"USD", 1e17, "$100,000,000,000,000,000.00"},
		{"USD", 1e30, "$1,000,000,000,000,000,000,000,000,000,000.00"},
		{"JPY", 1e20, "¥100,000,000,000,000,000,000"},
		{"EUR", -1e18, "-€1,000,000,000,000,000,000.00"},
	}

	for _, tc := range tests {
		t.Run(tc.code+"/"+tc.want, func(t *testing.T) {
			if got := FormatPrice(tc.code, tc.amount); got != tc.want {
				t.Fatalf("FormatPrice(%q, %v): expected %q, got %q", tc.code, tc.amount, tc.want, got)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	c, ok := Lookup(" eur ")
	if !ok || c.Code != "EUR" || c.Symbol != "€" {
		t.Fatalf("expected EUR entry, got %+v (ok=%t)", c, ok)
	}

	c, ok = Lookup("")
	if !ok || c.Code != DefaultCode {
		t.Fatalf("expected default entry for empty code, got %+v (ok=%t)", c, ok)
	}

	if _, ok := Lookup("ZZZ"); ok {
		t.Fatal("expected unknown code to report ok=false")
	}
}

func TestAllIsSorted(t *testing.T) {
	all := All()
	if len(all) != len(catalogue) {
		t.Fatalf("expected %d currencies, got %d", len(catalogue), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Code >= all[i].Code {
			t.Fatalf("expected sorted codes, got %q before %q", all[i-1].Code, all[i].Code)
		}
	}
}

func TestListHandler(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/currencies", nil)
	w := testutil.ExecuteRequest(r, http.HandlerFunc(List))

	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var body struct {
		Default    string     `json:"default"`
		Currencies []Currency `json:"currencies"`
	}
	testutil.DecodeJSONBody(t, w.Body, &body)

	if body.Default != DefaultCode {
		t.Fatalf("expected default %q, got %q", DefaultCode, body.Default)
	}
	if len(body.Currencies) != len(catalogue) {
		t.Fatalf("expected %d currencies, got %d", len(catalogue), len(body.Currencies))
	}
}

package refdata

import "testing"

func TestTablesHaveExpectedShape(t *testing.T) {
	if got := len(Countries()); got != 12 {
		t.Fatalf("expected 12 countries, got %d", got)
	}
	if got := len(Scenarios()); got != 12 {
		t.Fatalf("expected 12 scenarios, got %d", got)
	}
	if got := len(Topics()); got != 12 {
		t.Fatalf("expected 12 topics, got %d", got)
	}
	if got := len(Models()); got != 3 {
		t.Fatalf("expected 3 models, got %d", got)
	}
	if got := len(AwarenessStats()); got != len(Countries()) {
		t.Fatalf("awareness stats not aligned with countries: %d", got)
	}
}

func TestCountryNameUsesReferenceTable(t *testing.T) {
	for _, c := range Countries() {
		if got := CountryName(c.Code); got != c.Name {
			t.Fatalf("CountryName(%q) = %q, want %q", c.Code, got, c.Name)
		}
	}
}

func TestCountryNameFallsBackToISODatabase(t *testing.T) {
	if got := CountryName("FI"); got != "Finland" {
		t.Fatalf("CountryName(FI) = %q, want Finland", got)
	}
}

func TestCountryNameEchoesUnknownCode(t *testing.T) {
	if got := CountryName("ZZ"); got != "ZZ" {
		t.Fatalf("CountryName(ZZ) = %q, want the code echoed back", got)
	}
}

func TestCountryByCodeNormalizesInput(t *testing.T) {
	c, ok := CountryByCode(" gb ")
	if !ok {
		t.Fatal("expected lookup to succeed for lowercase padded code")
	}
	if c.Name != "United Kingdom" {
		t.Fatalf("unexpected country: %+v", c)
	}
	if _, ok := CountryByCode("ZZ"); ok {
		t.Fatal("ZZ should not resolve to a supported country")
	}
}

func TestQuizAnswersAreInRange(t *testing.T) {
	for i, q := range Quiz() {
		if q.Answer < 0 || q.Answer >= len(q.Options) {
			t.Fatalf("question %d has out-of-range answer %d", i, q.Answer)
		}
	}
}

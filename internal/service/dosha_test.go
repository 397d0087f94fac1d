package service

import "testing"

func TestSplitDoshaLabel(t *testing.T) {
	cases := []struct {
		label     string
		primary   string
		secondary string
	}{
		{"Vata", "Vata", ""},
		{"Pitta", "Pitta", ""},
		{"Vata-Pitta", "Vata", "Pitta"},
		{"Kapha-Vata", "Kapha", "Vata"},
		{"  Pitta-Kapha ", "Pitta", "Kapha"},
	}

	for _, tc := range cases {
		primary, secondary := SplitDoshaLabel(tc.label)
		if primary != tc.primary || secondary != tc.secondary {
			t.Fatalf("label %q: expected (%q, %q), got (%q, %q)",
				tc.label, tc.primary, tc.secondary, primary, secondary)
		}
	}
}

func TestPrimaryDoshaOf(t *testing.T) {
	if got := PrimaryDoshaOf("vata-pitta"); got != DoshaVata {
		t.Fatalf("expected Vata, got %q", got)
	}
	if got := PrimaryDoshaOf("KAPHA"); got != DoshaKapha {
		t.Fatalf("expected Kapha, got %q", got)
	}
}

func TestDoshaInText(t *testing.T) {
	if !doshaInText("Kapha, Pitta, Vata", DoshaPitta) {
		t.Fatal("expected Pitta to match suitable list")
	}
	if doshaInText("Kapha, Pitta", DoshaVata) {
		t.Fatal("Vata should not match")
	}
	if doshaInText("anything", "") {
		t.Fatal("empty dosha should never match")
	}

	// 子串匹配的已知局限：大小写敏感
	if doshaInText("kapha, pitta", DoshaPitta) {
		t.Fatal("matching is case sensitive by design")
	}
}

func TestIsPrimaryDosha(t *testing.T) {
	for _, label := range []string{DoshaVata, DoshaPitta, DoshaKapha} {
		if !IsPrimaryDosha(label) {
			t.Fatalf("%s should be a primary dosha", label)
		}
	}
	if IsPrimaryDosha("Vata-Pitta") {
		t.Fatal("dual label is not a primary dosha")
	}
	if IsPrimaryDosha("") {
		t.Fatal("empty label is not a primary dosha")
	}
}

package variant

import "testing"

func TestValidateStartFENForEveryRegisteredVariant(t *testing.T) {
	for _, name := range Names() {
		var def = Lookup(name)
		if err := ValidateStartFEN(def); err != nil {
			t.Errorf("variant %s: %v", name, err)
		}
	}
}

func TestLookupFallsBackToChess(t *testing.T) {
	var def = Lookup("not-a-real-variant")
	if def.Name != "chess" {
		t.Errorf("Lookup of an unknown variant name = %q, want %q", def.Name, "chess")
	}
}

func TestNamesIncludesCoreVariants(t *testing.T) {
	var want = []string{"chess", "atomic", "crazyhouse", "bughouse", "3check",
		"antichess", "losers", "kingofthehill", "racingkings", "horde", "extinction"}
	var have = map[string]bool{}
	for _, n := range Names() {
		have[n] = true
	}
	for _, n := range want {
		if !have[n] {
			t.Errorf("Names() is missing %q", n)
		}
	}
}

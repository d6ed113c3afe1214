package intent

import "testing"

func TestMatchCommands(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"/start", Start},
		{"/help", Help},
		{"/all", GlobalStats},
	}

	for _, tt := range tests {
		if got := Match(tt.text); got.Kind != tt.want {
			t.Errorf("Match(%q).Kind = %s, want %s", tt.text, got.Kind, tt.want)
		}
	}
}

func TestMatchCountryCommand(t *testing.T) {
	tests := []struct {
		text        string
		wantCountry string
	}{
		{"/singapore", "singapore"},
		{"/sg", "sg"},
		{"/usa", "usa"},
		{"/france", "france"},
	}

	for _, tt := range tests {
		got := Match(tt.text)
		if got.Kind != CountryStats {
			t.Errorf("Match(%q).Kind = %s, want country_stats", tt.text, got.Kind)
			continue
		}
		if got.Country != tt.wantCountry {
			t.Errorf("Match(%q).Country = %q, want %q", tt.text, got.Country, tt.wantCountry)
		}
		if !got.NeedsData() {
			t.Errorf("Match(%q).NeedsData() = false, want true", tt.text)
		}
	}
}

func TestMatchKoreaSynonyms(t *testing.T) {
	for _, text := range []string{"korea", "south_korea", "skorea", "kor", "southkorea"} {
		got := Match(text)
		if got.Kind != CountrySpecial {
			t.Errorf("Match(%q).Kind = %s, want country_special", text, got.Kind)
			continue
		}
		if got.Country != "s. korea" {
			t.Errorf("Match(%q).Country = %q, want %q", text, got.Country, "s. korea")
		}
	}
}

// Commands with digits, punctuation, or non-ASCII letters are not
// country commands; they fall through to the keyword scan and end up
// as None. This asymmetry is deliberate.
func TestMatchNonLetterCommandsFallThrough(t *testing.T) {
	for _, text := range []string{"/covid19", "/south-korea", "/états", "/sg!", "/"} {
		if got := Match(text); got.Kind != None {
			t.Errorf("Match(%q).Kind = %s, want none", text, got.Kind)
		}
	}
}

func TestMatchKeywords(t *testing.T) {
	tests := []struct {
		text string
		want Kind
	}{
		{"hello there", Greeting},
		{"well hello", Greeting},
		{"thanks a lot", Gratitude},
		{"ok thx", Gratitude},
		{"bye for now", Farewell},
		{"see you later", Farewell},
		{"thanks and goodbye", Gratitude}, // earliest token wins
	}

	for _, tt := range tests {
		if got := Match(tt.text); got.Kind != tt.want {
			t.Errorf("Match(%q).Kind = %s, want %s", tt.text, got.Kind, tt.want)
		}
	}
}

func TestMatchNoMatch(t *testing.T) {
	for _, text := range []string{"", "what is this", "covid stats please", "helloo"} {
		if got := Match(text); got.Kind != None {
			t.Errorf("Match(%q).Kind = %s, want none", text, got.Kind)
		}
	}
}

func TestMatchIsIdempotent(t *testing.T) {
	for _, text := range []string{"/start", "korea", "hello there", "gibberish"} {
		first := Match(text)
		second := Match(text)
		if first != second {
			t.Errorf("Match(%q) not stable: %+v vs %+v", text, first, second)
		}
	}
}

func TestNeedsData(t *testing.T) {
	noData := []string{"/start", "/help", "hello", "thanks", "bye", "junk"}
	for _, text := range noData {
		if Match(text).NeedsData() {
			t.Errorf("Match(%q).NeedsData() = true, want false", text)
		}
	}
	if !Match("/all").NeedsData() {
		t.Error("Match(/all).NeedsData() = false, want true")
	}
	if !Match("korea").NeedsData() {
		t.Error("Match(korea).NeedsData() = false, want true")
	}
}

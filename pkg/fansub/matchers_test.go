package fansub

import "testing"

func TestSeasonChain(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"One-Punch Man S3 - 04", 3, true},
		{"[Show S01][WebRip]", 1, true},
		{"Show Season 2", 2, true},
		{"番剧名 第2季", 2, true},
		{"Overlord IV", 4, true},
		{"[IV] 序章", 4, true},
		{"MIX", 0, false},
		{"XIII", 0, false},
		{"Gate-IV", 0, false},
		{"no season here", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, ok := seasonChain.find(tt.input, nil)
			if ok != tt.ok {
				t.Fatalf("find(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && m.value != tt.want {
				t.Errorf("find(%q) = %d, want %d", tt.input, m.value, tt.want)
			}
		})
	}
}

func TestEpisodeChain(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"番剧名 S02E220", 220},
		{"番剧名 第01话", 1},
		{"番剧名 第 12 集", 12},
		{"某番剧 EP01", 1},
		{"进击的巨人 E220", 220},
		{"[爱恋][某番][22][MP4]", 22},
		{"妖精的尾巴_S001", 1},
		{"孤独搖滾！- 01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, ok := episodeChain.find(tt.input, nil)
			if !ok {
				t.Fatalf("find(%q): no match", tt.input)
			}
			if m.value != tt.want {
				t.Errorf("find(%q) = %d, want %d", tt.input, m.value, tt.want)
			}
		})
	}
}

func TestEpisodeChainSpanCoversNumberOnly(t *testing.T) {
	m, ok := episodeChain.find("S02E220", nil)
	if !ok {
		t.Fatal("no match")
	}
	if m.value != 220 {
		t.Errorf("value = %d, want 220", m.value)
	}
	if m.text != "S02E220" {
		t.Errorf("text = %q, want the full token", m.text)
	}
	if m.span != (span{4, 7}) {
		t.Errorf("span = %v, want {4 7} (the episode digits only)", m.span)
	}
}

func TestEpisodeChainExclusion(t *testing.T) {
	stem := "Show [1080] 04"

	m, ok := episodeChain.find(stem, nil)
	if !ok {
		t.Fatal("no match")
	}
	if m.value != 1080 {
		t.Errorf("unexcluded value = %d, want 1080 (bracket outranks delimiter)", m.value)
	}

	// Excluding the resolution tag pushes the chain down to the
	// delimiter-prefixed number.
	m, ok = episodeChain.find(stem, []span{{5, 11}})
	if !ok {
		t.Fatal("no match with exclusion")
	}
	if m.value != 4 {
		t.Errorf("excluded value = %d, want 4", m.value)
	}
}

func TestRomanValues(t *testing.T) {
	tests := []struct {
		roman string
		want  int
	}{
		{"I", 1}, {"II", 2}, {"III", 3}, {"IV", 4}, {"V", 5},
		{"VI", 6}, {"VII", 7}, {"VIII", 8}, {"IX", 9}, {"X", 10},
	}

	for _, tt := range tests {
		m, ok := findRomanSeason(tt.roman)
		if !ok {
			t.Errorf("findRomanSeason(%q): no match", tt.roman)
			continue
		}
		if m.value != tt.want {
			t.Errorf("findRomanSeason(%q) = %d, want %d", tt.roman, m.value, tt.want)
		}
	}
}

func TestRomanSeasonGuard(t *testing.T) {
	for _, s := range []string{"Overlord IV", "[IV] opening", "IV"} {
		if _, ok := findRomanSeason(s); !ok {
			t.Errorf("findRomanSeason(%q): expected a match", s)
		}
	}

	// Preceded by anything but whitespace or a bracket: rejected.
	for _, s := range []string{"Gate-IV", "a.V b"} {
		if _, ok := findRomanSeason(s); ok {
			t.Errorf("findRomanSeason(%q): expected no match", s)
		}
	}
}

package figstyle

import "testing"

func TestPaletteLengths(t *testing.T) {
	t.Parallel()

	cases := []struct {
		list List
		want int
	}{
		{JournalMixed, 15},
		{CoolJournal, 20},
		{BalancedJournal, 31},
		{Atlas24, 24},
	}
	for _, tc := range cases {
		if tc.list.Len() != tc.want {
			t.Errorf("%s: expected %d colors, got %d", tc.list.Name(), tc.want, tc.list.Len())
		}
	}
}

func TestJournalMixed_FirstColor(t *testing.T) {
	t.Parallel()

	r, g, b, _ := JournalMixed.Color(0).RGBA()
	if r>>8 != 0x7C || g>>8 != 0x19 || b>>8 != 0x19 {
		t.Errorf("unexpected first color: #%02x%02x%02x", r>>8, g>>8, b>>8)
	}
}

func TestList_ColorWraps(t *testing.T) {
	t.Parallel()

	if JournalMixed.Color(0) != JournalMixed.Color(15) {
		t.Error("expected indexing to wrap at the list length")
	}
	if JournalMixed.Color(1) == JournalMixed.Color(2) {
		t.Error("expected adjacent colors to differ")
	}
}

func TestList_ColorsCopy(t *testing.T) {
	t.Parallel()

	colors := Atlas24.Colors()
	colors[0] = colors[1]
	if Atlas24.Color(0) == Atlas24.Color(1) {
		t.Error("mutating the returned slice should not change the list")
	}
}

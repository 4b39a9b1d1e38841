package derive

import "testing"

func TestWaterProgress(t *testing.T) {
	cases := []struct {
		current, goal, want int
	}{
		{0, 2000, 0},
		{1000, 2000, 50},
		{2000, 2000, 100},
		{2500, 2000, 100}, // clamped
		{333, 2000, 17},   // rounded
		{500, 0, 0},       // degenerate goal
	}
	for _, c := range cases {
		if got := WaterProgress(c.current, c.goal); got != c.want {
			t.Errorf("WaterProgress(%d, %d) = %d, want %d", c.current, c.goal, got, c.want)
		}
	}
}

func TestBuildWaterSchedule(t *testing.T) {
	s, err := BuildWaterSchedule("07:00", "22:00", 2000)
	if err != nil {
		t.Fatalf("BuildWaterSchedule failed: %v", err)
	}

	if s.AwakeMinutes != 900 {
		t.Errorf("awake minutes = %d, want 900", s.AwakeMinutes)
	}
	if len(s.Servings) != 7 {
		t.Fatalf("serving count = %d, want 7", len(s.Servings))
	}
	if s.ServingML != 300 {
		t.Errorf("serving size = %d, want 300", s.ServingML)
	}

	want := []string{"07:00", "09:30", "12:00", "14:30", "17:00", "19:30", "22:00"}
	for i, w := range want {
		if s.Servings[i].Time != w {
			t.Errorf("serving %d at %s, want %s", i, s.Servings[i].Time, w)
		}
		if s.Servings[i].AmountML != 300 {
			t.Errorf("serving %d amount = %d, want 300", i, s.Servings[i].AmountML)
		}
	}
}

func TestBuildWaterSchedule_MinimumFiveServings(t *testing.T) {
	// A short waking window still yields five servings.
	s, err := BuildWaterSchedule("08:00", "14:00", 2000)
	if err != nil {
		t.Fatalf("BuildWaterSchedule failed: %v", err)
	}
	if len(s.Servings) != 5 {
		t.Fatalf("serving count = %d, want 5", len(s.Servings))
	}
}

func TestBuildWaterSchedule_SleepPastMidnight(t *testing.T) {
	// Sleep at 01:00 lies numerically before a 07:00 wake; the window wraps.
	s, err := BuildWaterSchedule("07:00", "01:00", 2000)
	if err != nil {
		t.Fatalf("BuildWaterSchedule failed: %v", err)
	}
	if s.AwakeMinutes != 18*60 {
		t.Errorf("awake minutes = %d, want %d", s.AwakeMinutes, 18*60)
	}
	last := s.Servings[len(s.Servings)-1]
	if last.Time != "01:00" {
		t.Errorf("last serving at %s, want 01:00", last.Time)
	}
}

func TestBuildWaterSchedule_BadTimes(t *testing.T) {
	if _, err := BuildWaterSchedule("late", "22:00", 2000); err == nil {
		t.Error("expected error for bad wake time")
	}
	if _, err := BuildWaterSchedule("07:00", "late", 2000); err == nil {
		t.Error("expected error for bad sleep time")
	}
}

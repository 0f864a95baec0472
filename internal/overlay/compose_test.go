package overlay

import (
	"reflect"
	"testing"
)

func testScene() Scene {
	return Scene{
		Screen:   Size{W: 1000, H: 500},
		Series:   constSeries(400, 0.7),
		Playhead: Playhead{Frame: 200},
		Config:   DefaultDisplayConfig(),
		Status:   Status{InReplay: true},
		Keys:     DefaultKeys(),
	}
}

func texts(cmds []Command) []string {
	var out []string
	for _, c := range cmds {
		if c.Kind == Text {
			out = append(out, c.Text)
		}
	}
	return out
}

func TestComposeDisabled(t *testing.T) {
	s := testScene()
	s.Config.Enabled = false
	s.Config.DebugGrid = true
	if cmds := Compose(s); len(cmds) != 0 {
		t.Errorf("expected no commands when disabled, got %d", len(cmds))
	}
}

func TestComposeOutsideReplayOnlyGrid(t *testing.T) {
	s := testScene()
	s.Status.InReplay = false
	if cmds := Compose(s); len(cmds) != 0 {
		t.Errorf("expected nothing outside a replay, got %d commands", len(cmds))
	}

	s.Config.DebugGrid = true
	cmds := Compose(s)
	if len(cmds) != 202 {
		t.Errorf("expected 202 debug grid lines, got %d", len(cmds))
	}
}

func TestComposeElementGating(t *testing.T) {
	s := testScene()
	s.Config.ShowHotkeyReminders = false
	lay := ComputeLayout(s.Screen, s.Config.Fractions)

	chartOnly := RenderChart(lay.Main, s.Series, s.Playhead, s.Config.ChartOptions())
	if got := Compose(s); !reflect.DeepEqual(got, chartOnly) {
		t.Errorf("default config should draw only the chart, got %d commands want %d", len(got), len(chartOnly))
	}

	s.Config.ShowTopBars = true
	bars := RenderBars(lay.LeftBar, lay.RightBar, s.Series, s.Playhead, s.Config.BarsOptions())
	want := append(append([]Command{}, bars...), chartOnly...)
	if got := Compose(s); !reflect.DeepEqual(got, want) {
		t.Errorf("bars should be drawn before the chart, got %d commands want %d", len(got), len(want))
	}

	s.Config.ShowMainEval = false
	if got := Compose(s); !reflect.DeepEqual(got, bars) {
		t.Errorf("expected only bars, got %d commands", len(got))
	}
}

func TestComposeRemindersWithoutAnalysis(t *testing.T) {
	s := testScene()
	s.Series = nil
	s.Keys = Keys{Settings: "F6", Analysis: "F7"}

	got := texts(Compose(s))
	want := []string{"press F7 to analyze replay", "press F6 to toggle settings window"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %q, got %q", want, got)
	}

	s.Status.Busy = true
	got = texts(Compose(s))
	if len(got) == 0 || got[0] != "analyzing..." {
		t.Errorf("expected busy reminder first, got %q", got)
	}
}

func TestComposeRemindersWithAnalysis(t *testing.T) {
	s := testScene()
	cmds := Compose(s)
	var reminder *Command
	for i := range cmds {
		if cmds[i].Kind == Text {
			reminder = &cmds[i]
		}
	}
	if reminder == nil {
		t.Fatal("expected a settings reminder")
	}
	if reminder.Text != "press Z to toggle settings window" {
		t.Errorf("unexpected reminder %q", reminder.Text)
	}
	if reminder.Rect.Y != 500*reminderBelowChart {
		t.Errorf("expected reminder below the chart, got y=%v", reminder.Rect.Y)
	}
	if reminder.Rect.X != 500 || reminder.Align != AlignCenter {
		t.Errorf("expected reminder centred at x=500, got %+v", reminder.Rect)
	}

	s.Config.ShowMainEval = false
	cmds = Compose(s)
	for _, c := range cmds {
		if c.Kind == Text && c.Rect.Y != 500*reminderSettingsFrac {
			t.Errorf("expected reminder at the top when the chart is hidden, got y=%v", c.Rect.Y)
		}
	}
}

func TestComposeTitle(t *testing.T) {
	s := testScene()
	s.Config.ShowTitle = true
	s.Config.ShowHotkeyReminders = false
	got := texts(Compose(s))
	if len(got) != 1 || got[0] != DefaultTitle {
		t.Errorf("expected default title, got %q", got)
	}

	s.Title = "match 3"
	got = texts(Compose(s))
	if len(got) != 1 || got[0] != "match 3" {
		t.Errorf("expected custom title, got %q", got)
	}
}

func TestDebugGridBrightTenths(t *testing.T) {
	cmds := DebugGrid(Size{W: 200, H: 100})
	var major int
	for _, c := range cmds {
		if c.Color == ColorDebugMajor {
			major++
		}
	}
	if major != 22 {
		t.Errorf("expected 22 major lines, got %d", major)
	}
}

func TestComposeIdempotent(t *testing.T) {
	s := testScene()
	s.Config.ShowTopBars = true
	s.Config.ShowTitle = true
	s.Config.DebugGrid = true
	if !reflect.DeepEqual(Compose(s), Compose(s)) {
		t.Error("identical scenes should produce identical commands")
	}
}

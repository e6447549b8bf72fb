package sim

import "testing"

func TestTypewriterTiming(t *testing.T) {
	const dt = 0.016
	text := "ten chars!" // length 10

	var d Dialogue
	if d.Active() {
		t.Fatalf("dialogue should start idle")
	}

	d.Start(text)
	if !d.Active() || d.Phase() != DialogueRevealing {
		t.Fatalf("expected revealing after Start, phase=%v", d.Phase())
	}
	if d.Text() != "" {
		t.Fatalf("no characters should be revealed yet, got %q", d.Text())
	}

	elapsed := 0.0
	for d.Phase() == DialogueRevealing {
		d.Update(dt)
		elapsed += dt
		if !d.Active() {
			t.Fatalf("dialogue must stay active while revealing")
		}
	}
	// 10 characters at 100ms each: reveal completes at >= 1s.
	if elapsed < 1.0 {
		t.Fatalf("full reveal at %.3fs, want >= 1s", elapsed)
	}
	if d.Text() != text {
		t.Fatalf("expected full text revealed, got %q", d.Text())
	}
	if d.Phase() != DialogueHold {
		t.Fatalf("expected hold phase after reveal, got %v", d.Phase())
	}

	held := 0.0
	for d.Active() {
		d.Update(dt)
		held += dt
	}
	if held < 1.5 {
		t.Fatalf("auto-hide after %.3fs of hold, want >= 1.5s", held)
	}
	if d.Text() != "" {
		t.Fatalf("buffers should clear on hide, got %q", d.Text())
	}
}

func TestTypewriterRevealRate(t *testing.T) {
	cases := []struct {
		name     string
		ticks    int
		dt       float64
		revealed int
	}{
		{"under_first_interval", 6, 0.016, 0},       // 96ms
		{"one_char", 7, 0.016, 1},                   // 112ms
		{"three_chars", 20, 0.016, 3},               // 320ms
		{"large_step_reveals_several", 1, 0.35, 3},  // one big tick
		{"never_past_full_length", 1, 10.0, 5},      // way past the end
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var d Dialogue
			d.Start("hello")
			for i := 0; i < c.ticks; i++ {
				d.Update(c.dt)
			}
			if got := len([]rune(d.Text())); got != c.revealed {
				t.Fatalf("after %d ticks of %.3fs revealed %d chars, want %d", c.ticks, c.dt, got, c.revealed)
			}
		})
	}
}

func TestTypewriterRestart(t *testing.T) {
	var d Dialogue
	d.Start("first")
	d.Update(0.25)
	d.Start("second")
	if d.Text() != "" {
		t.Fatalf("Start must reset revealed length, got %q", d.Text())
	}
	if d.Phase() != DialogueRevealing {
		t.Fatalf("expected revealing after restart, got %v", d.Phase())
	}
}

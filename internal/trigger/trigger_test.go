package trigger

import "testing"

func feedAll(t *testing.T, d *Detector, keys string) bool {
	t.Helper()
	fired := false
	for _, r := range keys {
		if d.Feed(string(r)) {
			fired = true
		}
	}
	return fired
}

func TestDetectorFullSequence(t *testing.T) {
	d := NewDetector()
	for i, r := range Sequence {
		fired := d.Feed(string(r))
		if i < len(Sequence)-1 && fired {
			t.Fatalf("fired early at keystroke %d", i)
		}
		if i == len(Sequence)-1 && !fired {
			t.Fatal("did not fire on final keystroke")
		}
	}
	if d.Progress() != 0 {
		t.Errorf("progress after firing = %d, want 0", d.Progress())
	}
}

func TestDetectorWrongKeyResets(t *testing.T) {
	d := NewDetector()
	if feedAll(t, d, "/admix") {
		t.Fatal("fired on wrong input")
	}
	if d.Progress() != 0 {
		t.Errorf("progress after mismatch = %d, want 0", d.Progress())
	}
	if !feedAll(t, d, Sequence) {
		t.Error("sequence after reset should fire")
	}
}

func TestDetectorSlashRestarts(t *testing.T) {
	d := NewDetector()
	// A stray '/' mid-sequence starts a fresh attempt rather than
	// discarding it entirely.
	if feedAll(t, d, "/adm/") {
		t.Fatal("fired unexpectedly")
	}
	if d.Progress() != 1 {
		t.Fatalf("progress after restart = %d, want 1", d.Progress())
	}
	if !feedAll(t, d, Sequence[1:]) {
		t.Error("completing from restarted '/' should fire")
	}
}

func TestDetectorIgnoresNoise(t *testing.T) {
	d := NewDetector()
	if feedAll(t, d, "hello world 123") {
		t.Fatal("fired on unrelated typing")
	}
	if !feedAll(t, d, Sequence) {
		t.Error("sequence after noise should fire")
	}
}

func TestDetectorFiresTwice(t *testing.T) {
	d := NewDetector()
	if !feedAll(t, d, Sequence) || !feedAll(t, d, Sequence) {
		t.Error("detector should fire on every complete sequence")
	}
}

func TestDetectorReset(t *testing.T) {
	d := NewDetector()
	feedAll(t, d, "/admin")
	d.Reset()
	if d.Progress() != 0 {
		t.Errorf("progress after Reset = %d, want 0", d.Progress())
	}
}

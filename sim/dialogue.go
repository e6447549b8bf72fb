package sim

// DialoguePhase is a typewriter machine phase.
type DialoguePhase int

const (
	// DialogueIdle: no dialogue on screen, interactions allowed.
	DialogueIdle DialoguePhase = iota
	// DialogueRevealing: text appears one character per reveal interval.
	DialogueRevealing
	// DialogueHold: full text shown, hide countdown running.
	DialogueHold
)

const (
	// dialogueCharInterval is the simulated time between revealed
	// characters.
	dialogueCharInterval = 0.1
	// dialogueHoldTime is how long the full text stays up before the
	// dialogue clears itself.
	dialogueHoldTime = 1.5
)

// Dialogue is the scene-wide typewriter state machine:
// Idle -> Revealing -> Hold -> Idle. There is exactly one dialogue per
// scene; while it is active, new interactions are blocked everywhere.
// All timing is simulated time, so runs are deterministic and replayable.
type Dialogue struct {
	phase     DialoguePhase
	full      []rune
	revealed  int
	charTimer float64
	hideTimer float64
}

// Start begins revealing text from the first character. Callers gate on
// Active before starting; Start itself always resets the machine.
func (d *Dialogue) Start(text string) {
	d.phase = DialogueRevealing
	d.full = []rune(text)
	d.revealed = 0
	d.charTimer = 0
	d.hideTimer = 0
	if len(d.full) == 0 {
		d.phase = DialogueHold
		d.hideTimer = dialogueHoldTime
	}
}

// Update advances the machine by dt seconds of simulated time.
func (d *Dialogue) Update(dt float64) {
	switch d.phase {
	case DialogueRevealing:
		d.charTimer += dt
		for d.charTimer >= dialogueCharInterval && d.revealed < len(d.full) {
			d.charTimer -= dialogueCharInterval
			d.revealed++
		}
		if d.revealed >= len(d.full) {
			d.phase = DialogueHold
			d.hideTimer = dialogueHoldTime
		}
	case DialogueHold:
		d.hideTimer -= dt
		if d.hideTimer <= 0 {
			d.clear()
		}
	}
}

func (d *Dialogue) clear() {
	d.phase = DialogueIdle
	d.full = nil
	d.revealed = 0
	d.charTimer = 0
	d.hideTimer = 0
}

// Active reports whether a dialogue is revealing or holding. Active gates
// new interactions scene-wide.
func (d *Dialogue) Active() bool {
	return d.phase != DialogueIdle
}

// Phase returns the current machine phase.
func (d *Dialogue) Phase() DialoguePhase {
	return d.phase
}

// Text returns the revealed substring for the UI overlay.
func (d *Dialogue) Text() string {
	return string(d.full[:d.revealed])
}

package entities

// DamageKind is the severity of damage on a track
type DamageKind string

const (
	DamageSuperficial DamageKind = "superficial"
	DamageAggravated  DamageKind = "aggravated"
	// DamageAll is only valid for healing
	DamageAll DamageKind = "all"
)

// TrackName identifies one of the two damage tracks
type TrackName string

const (
	TrackHealth    TrackName = "health"
	TrackWillpower TrackName = "willpower"
)

// ParseDamageKind accepts superficial, aggravated and all
func ParseDamageKind(raw string) (DamageKind, bool) {
	switch DamageKind(raw) {
	case DamageSuperficial, DamageAggravated, DamageAll:
		return DamageKind(raw), true
	}
	return "", false
}

// ParseTrackName accepts health and willpower
func ParseTrackName(raw string) (TrackName, bool) {
	switch TrackName(raw) {
	case TrackHealth, TrackWillpower:
		return TrackName(raw), true
	}
	return "", false
}

// Track is a health or willpower track with superficial and aggravated boxes
type Track struct {
	Max         int `json:"max"`
	Superficial int `json:"superficial"`
	Aggravated  int `json:"aggravated"`
}

// Damage marks boxes on the track. Superficial damage never spills into boxes
// already holding aggravated damage; aggravated damage overwrites superficial
// boxes one for one.
func (t *Track) Damage(kind DamageKind, amount int) {
	if amount <= 0 {
		return
	}

	switch kind {
	case DamageSuperficial:
		t.Superficial = min(t.Superficial+amount, t.Max-t.Aggravated)
	case DamageAggravated:
		t.Aggravated = min(t.Aggravated+amount, t.Max)
		t.Superficial = max(0, t.Superficial-amount)
	}

	t.Superficial = max(0, t.Superficial)
}

// Heal clears boxes of the given kind. DamageAll clears the whole track and
// ignores amount.
func (t *Track) Heal(kind DamageKind, amount int) {
	switch kind {
	case DamageAll:
		t.Superficial = 0
		t.Aggravated = 0
	case DamageSuperficial:
		t.Superficial = max(0, t.Superficial-amount)
	case DamageAggravated:
		t.Aggravated = max(0, t.Aggravated-amount)
	}
}

// Undamaged is the number of empty boxes
func (t *Track) Undamaged() int {
	return max(0, t.Max-t.Superficial-t.Aggravated)
}

// Impaired reports whether every box is marked
func (t *Track) Impaired() bool {
	return t.Superficial+t.Aggravated >= t.Max
}

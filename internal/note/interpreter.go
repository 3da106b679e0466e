package note

// #region imports
import "strings"

// #endregion

// #region tags

// Tag labels a recognized phrase family inside a free-text note.
type Tag string

const (
	TagWalkDesire  Tag = "walk_desire"
	TagDate        Tag = "date"
	TagMeeting     Tag = "meeting"
	TagFatigue     Tag = "fatigue"
	TagReservation Tag = "reservation"
	TagFamily      Tag = "family"
	TagUrgency     Tag = "urgency"
)

// #endregion tags

// #region modifiers

// Modifiers is the bounded, ephemeral output of interpreting one note.
// Ratio-valued fields stay in [0,1].
type Modifiers struct {
	WalkingPenalty    float64
	WalkingPreference float64
	RushPenalty       float64
	ComfortBonus      float64
	BufferMinutes     int
	Tags              []Tag
}

// HasTag reports whether a family was detected.
func (m Modifiers) HasTag(t Tag) bool {
	for _, tag := range m.Tags {
		if tag == t {
			return true
		}
	}
	return false
}

// #endregion modifiers

// #region rule-table

// rule binds one phrase family to its additive deltas. Rules run in the
// fixed order below; overrides are explicit zeroings inside apply, never
// implicit precedence.
type rule struct {
	tag     Tag
	phrases []string
	apply   func(m *Modifiers)
}

var rules = []rule{
	{
		tag: TagWalkDesire,
		phrases: []string{
			"like to walk", "want to walk", "prefer walking", "enjoy walking",
			"nice day for a walk", "stretch my legs", "on foot",
		},
		apply: func(m *Modifiers) {
			m.WalkingPreference += 0.6
		},
	},
	{
		tag: TagDate,
		phrases: []string{
			"date night", "on a date", "first date", "romantic", "anniversary",
			"girlfriend", "boyfriend", "with my partner", "special evening",
		},
		apply: func(m *Modifiers) {
			m.ComfortBonus += 0.5
			m.RushPenalty += 0.3
		},
	},
	{
		tag: TagMeeting,
		phrases: []string{
			"meeting", "interview", "presentation", "client", "can't be late",
			"cannot be late", "must not be late",
		},
		apply: func(m *Modifiers) {
			m.RushPenalty += 0.4
			m.BufferMinutes += 10
		},
	},
	{
		tag: TagFatigue,
		phrases: []string{
			"exhausted", "tired", "no walking", "can't walk", "cannot walk",
			"heavy luggage", "suitcase", "carrying a lot", "my feet hurt",
			"don't want to walk", "avoid walking",
		},
		apply: func(m *Modifiers) {
			m.WalkingPenalty += 0.7
			m.ComfortBonus += 0.3
			m.WalkingPreference = 0 // fatigue overrides any walking desire
		},
	},
	{
		tag: TagReservation,
		phrases: []string{
			"reservation", "booked", "booking at", "tickets for", "show starts",
			"reserved for",
		},
		apply: func(m *Modifiers) {
			m.BufferMinutes += 15
			m.RushPenalty += 0.2
		},
	},
	{
		tag: TagFamily,
		phrases: []string{
			"with my kids", "with the kids", "stroller", "my parents",
			"elderly", "baby", "family trip", "with children",
		},
		apply: func(m *Modifiers) {
			m.WalkingPenalty += 0.4
			m.ComfortBonus += 0.4
			m.RushPenalty += 0.2
		},
	},
	{
		tag: TagUrgency,
		phrases: []string{
			"in a hurry", "hurry", "asap", "as fast as possible", "running late",
			"urgent", "quickly as", "need to rush",
		},
		apply: func(m *Modifiers) {
			m.WalkingPreference = 0 // urgency overrides walking desire
			m.RushPenalty /= 2      // urgency tolerates a rushed trip
		},
	},
}

// #endregion rule-table

// #region interpret

// Interpret scans a free-text note and accumulates bounded modifiers.
// Pure: identical input always yields identical output. Unrecognized text
// degrades to zero modifiers, never an error.
func Interpret(text string) Modifiers {
	var m Modifiers
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return m
	}

	for _, r := range rules {
		if matchesAny(lower, r.phrases) {
			r.apply(&m)
			m.Tags = append(m.Tags, r.tag)
		}
	}

	m.WalkingPenalty = clamp01(m.WalkingPenalty)
	m.WalkingPreference = clamp01(m.WalkingPreference)
	m.RushPenalty = clamp01(m.RushPenalty)
	m.ComfortBonus = clamp01(m.ComfortBonus)
	return m
}

// #endregion interpret

// #region helpers

func matchesAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers

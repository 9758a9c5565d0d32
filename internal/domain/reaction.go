package domain

// Reaction is the per-message toggle state for the like/dislike ledger.
// Modeling it as a tagged enumeration (rather than nullable booleans) keeps
// every transition exhaustively checkable.
type Reaction string

const (
	ReactionNone    Reaction = "none"
	ReactionLike    Reaction = "like"
	ReactionDislike Reaction = "dislike"
)

// Valid reports whether r is one of the three known states.
func (r Reaction) Valid() bool {
	switch r {
	case ReactionNone, ReactionLike, ReactionDislike:
		return true
	}
	return false
}

// ReactionState bundles the reaction counters with the user's toggle state.
// It is a value type; transitions return the next state without mutating the
// receiver, so callers can replace the message record atomically.
type ReactionState struct {
	Likes    int
	Dislikes int
	Action   Reaction
}

// ReactionStateOf extracts the reaction fields of a message.
func ReactionStateOf(m *Message) ReactionState {
	return ReactionState{Likes: m.Likes, Dislikes: m.Dislikes, Action: m.UserAction}
}

// Like applies one press of the like toggle:
//   - none    → like    (likes+1)
//   - dislike → like    (likes+1, dislikes-1)
//   - like    → none    (likes-1, toggle off)
func (s ReactionState) Like() ReactionState {
	switch s.Action {
	case ReactionLike:
		s.Likes--
		s.Action = ReactionNone
	case ReactionDislike:
		s.Likes++
		s.Dislikes--
		s.Action = ReactionLike
	default:
		s.Likes++
		s.Action = ReactionLike
	}
	return s.clamped()
}

// Dislike applies one press of the dislike toggle; symmetric with Like.
func (s ReactionState) Dislike() ReactionState {
	switch s.Action {
	case ReactionDislike:
		s.Dislikes--
		s.Action = ReactionNone
	case ReactionLike:
		s.Dislikes++
		s.Likes--
		s.Action = ReactionDislike
	default:
		s.Dislikes++
		s.Action = ReactionDislike
	}
	return s.clamped()
}

// Apply dispatches on the requested reaction. ReactionNone is not a valid
// request; callers validate with Reaction.Valid first.
func (s ReactionState) Apply(r Reaction) ReactionState {
	switch r {
	case ReactionLike:
		return s.Like()
	case ReactionDislike:
		return s.Dislike()
	}
	return s
}

// clamped floors the counters at zero. Counters only go negative if a stored
// row was tampered with out of band; the invariant is non-negative.
func (s ReactionState) clamped() ReactionState {
	if s.Likes < 0 {
		s.Likes = 0
	}
	if s.Dislikes < 0 {
		s.Dislikes = 0
	}
	return s
}

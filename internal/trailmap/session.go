package trailmap

const (
	IdleMessage   = "Tap any highlighted area on the map above to see details."
	PromptMessage = "Tap directly within a highlighted circle."
)

// State is the interaction state of a Session.
type State int

const (
	StateIdle State = iota
	StateSelected
	StatePrompt
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSelected:
		return "selected"
	case StatePrompt:
		return "prompt"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// View is what the page shows after an interaction.
type View struct {
	State    State  `json:"state"`
	Selected string `json:"selected"`
	Title    string `json:"title,omitempty"`
	Text     string `json:"text,omitempty"`
	Message  string `json:"message,omitempty"`
}

// Session tracks the displayed state for one viewer. Each click replaces
// the previous view entirely. A Session is not safe for concurrent use.
type Session struct {
	m    *Map
	view View
}

func NewSession(m *Map) *Session {
	return &Session{m: m, view: IdleView()}
}

func (s *Session) View() View { return s.view }

// Click resolves p and moves the session to Selected or Prompt.
func (s *Session) Click(p Point) View {
	s.view = ViewFor(s.m, s.m.Resolve(p))
	return s.view
}

// IdleView is the view shown before the first click.
func IdleView() View {
	return View{State: StateIdle, Selected: None, Message: IdleMessage}
}

// ViewFor renders a selection against m without tracking state.
func ViewFor(m *Map, sel Selection) View {
	if !sel.Matched() {
		return View{State: StatePrompt, Selected: None, Message: PromptMessage}
	}
	text, _ := m.Describe(sel.Name)
	return View{
		State:    StateSelected,
		Selected: sel.Name,
		Title:    "📍 " + sel.Name,
		Text:     text,
	}
}

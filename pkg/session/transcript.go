package session

const (
	RolePlayer   = "player"
	RoleNarrator = "narrator"
)

// TranscriptLimit caps the transcript so long sessions don't grow the
// stored state without bound.
const TranscriptLimit = 200

// Entry is one line of the session transcript: an echoed player command or
// a narrator response. The console uses the transcript to re-render
// scrollback when it reattaches to a session.
type Entry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Record appends a transcript entry, discarding the oldest entries beyond
// TranscriptLimit.
func (s *State) Record(role, content string) {
	s.Transcript = append(s.Transcript, Entry{Role: role, Content: content})
	if len(s.Transcript) > TranscriptLimit {
		s.Transcript = s.Transcript[len(s.Transcript)-TranscriptLimit:]
	}
}

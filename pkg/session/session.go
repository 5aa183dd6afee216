// Package session holds the process-wide mutable state shared by every
// simulated service: login and cookie flags, the consent record list, the
// reader preference, and the recommendation engine parameters.
//
// State is owned by the server and injected into handlers; a single RWMutex
// serializes access so concurrent requests see consistent values.
package session

import "sync"

// Fixed las2peer agent identities known to the mock.
const (
	AgentID1 = "las2peeragentid1"
	AgentID2 = "las2peeragentid2"
	AgentID3 = "las2peeragentid3"

	AgentName1 = "Peter"
	AgentName2 = "Alex"
	AgentName3 = "Michi"
)

// DefaultAlpha is the recommendation alpha value before any client writes it.
const DefaultAlpha = "0.5"

// addressBook maps agent IDs to display names. Read-only reference data, not
// part of the mutable session state.
var addressBook = map[string]string{
	AgentID1: AgentName1,
	AgentID2: AgentName2,
	AgentID3: AgentName3,
}

// LookupAgent resolves an agent ID to its display name.
func LookupAgent(id string) (string, bool) {
	name, ok := addressBook[id]
	return name, ok
}

// AddressBook returns a copy of the full agent directory.
func AddressBook() map[string]string {
	book := make(map[string]string, len(addressBook))
	for id, name := range addressBook {
		book[id] = name
	}
	return book
}

// ConsentRecord is a stored data-sharing consent decision. Anonymous is kept
// as the string "true" or "false" because that is how records appear on the
// wire.
type ConsentRecord struct {
	Reader    string `json:"reader"`
	Anonymous string `json:"anonymous"`
}

// State is the session state machine. The zero value is not usable; call New.
type State struct {
	mu         sync.RWMutex
	loggedIn   bool
	hasCookies bool
	readers    []string
	consent    []ConsentRecord
	preference string
	recsShared bool
	alpha      string
}

// New returns session state with seed values: logged out, no cookies, two
// seeded readers, no consent records, empty preference, sharing disabled, and
// the default alpha.
func New() *State {
	s := &State{}
	s.seed()
	return s
}

func (s *State) seed() {
	s.loggedIn = false
	s.hasCookies = false
	s.readers = []string{AgentName1, AgentName2}
	s.consent = nil
	s.preference = ""
	s.recsShared = false
	s.alpha = DefaultAlpha
}

// Reset restores all seed values. Used by tests to get a clean state without
// restarting the process.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed()
}

// LoggedIn reports whether a loggedin=true cookie has been observed.
func (s *State) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// SetLoggedIn records the login flag.
func (s *State) SetLoggedIn(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = v
}

// HasCookies reports whether a cookies=true cookie has been observed.
func (s *State) HasCookies() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasCookies
}

// SetHasCookies records the cookie-presence flag.
func (s *State) SetHasCookies(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hasCookies = v
}

// Readers returns a copy of the reader name list.
func (s *State) Readers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.readers))
	copy(out, s.readers)
	return out
}

// Consent returns a copy of the consent record list in insertion order.
func (s *State) Consent() []ConsentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ConsentRecord, len(s.consent))
	copy(out, s.consent)
	return out
}

// AddConsent appends a consent record. The anonymous flag is stored as the
// string "true" or "false".
func (s *State) AddConsent(reader string, anonymous bool) {
	rec := ConsentRecord{Reader: reader, Anonymous: "false"}
	if anonymous {
		rec.Anonymous = "true"
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.consent = append(s.consent, rec)
}

// RemoveConsent deletes every record matching both the reader and the
// boolean-equivalent anonymous flag, returning how many were removed.
func (s *State) RemoveConsent(reader string, anonymous bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.consent[:0]
	removed := 0
	for _, rec := range s.consent {
		if rec.Reader == reader && (rec.Anonymous == "true") == anonymous {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	s.consent = kept
	return removed
}

// Preference returns the current reader preference string.
func (s *State) Preference() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.preference
}

// SetPreference overwrites the reader preference.
func (s *State) SetPreference(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.preference = v
}

// RecommendationsShared reports whether the client opted into sharing.
func (s *State) RecommendationsShared() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recsShared
}

// ShareRecommendations marks recommendation sharing as enabled.
func (s *State) ShareRecommendations() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recsShared = true
}

// Alpha returns the stored recommendation alpha value. The value is opaque:
// whatever the client last posted, unvalidated.
func (s *State) Alpha() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alpha
}

// SetAlpha overwrites the alpha value verbatim.
func (s *State) SetAlpha(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alpha = v
}

// ResetAlpha sets alpha to the sentinel -1.
func (s *State) ResetAlpha() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.alpha = "-1"
}

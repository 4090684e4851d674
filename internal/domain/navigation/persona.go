package navigation

import "strings"

// Persona selects the flavor line woven into generated directions. It
// is cosmetic only: the path and distances are identical for every
// persona.
type Persona string

const (
	PersonaNone     Persona = ""
	PersonaGuide    Persona = "guide"
	PersonaBuddy    Persona = "buddy"
	PersonaExplorer Persona = "explorer"
)

// ParsePersona maps a request string to a persona. Unknown values fall
// back to PersonaNone rather than failing the request.
func ParsePersona(s string) Persona {
	switch Persona(strings.ToLower(strings.TrimSpace(s))) {
	case PersonaGuide:
		return PersonaGuide
	case PersonaBuddy:
		return PersonaBuddy
	case PersonaExplorer:
		return PersonaExplorer
	}
	return PersonaNone
}

// flavorLine returns the persona's flavor text, or "" for no flavor.
func (p Persona) flavorLine() string {
	switch p {
	case PersonaGuide:
		return "Guide tip: follow the signboards along this stretch if you lose your way."
	case PersonaBuddy:
		return "Campus buddy says: this walkway gets packed right after lectures, plan for it."
	case PersonaExplorer:
		return "You're about halfway there, explorer. The view here is worth a pause."
	}
	return ""
}

// flavorSegment returns the segment index after which the flavor line
// is inserted, given the number of segments. Guide and buddy speak on
// the first segment, the explorer at the midpoint segment.
func (p Persona) flavorSegment(segments int) int {
	if p == PersonaExplorer {
		return (segments - 1) / 2
	}
	return 0
}

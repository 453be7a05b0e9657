package game

// Party is an ordered collection of characters. It deliberately wraps a
// slice rather than aliasing one so that party-wide queries and
// serialization stay explicit.
type Party struct {
	Members []*Character `json:"members" yaml:"members"`
}

// NewParty creates a party from the given members. A nil or empty
// member list is a valid party (campaigns start with an empty one).
func NewParty(members ...*Character) *Party {
	return &Party{Members: members}
}

// AnyAlive returns true iff at least one member has hit points remaining
func (p *Party) AnyAlive() bool {
	for _, c := range p.Members {
		if c.Alive() {
			return true
		}
	}
	return false
}

// Size returns the number of party members
func (p *Party) Size() int {
	return len(p.Members)
}

// Add appends a character to the party
func (p *Party) Add(c *Character) {
	p.Members = append(p.Members, c)
}

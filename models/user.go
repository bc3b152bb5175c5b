package models

// UserRecord is the per-(guild, user) economy record. It is synthesized
// lazily on first access and never explicitly destroyed.
//
// LastFreePack is an RFC 3339 string rather than a time.Time so that an
// unparseable value degrades to "may claim" instead of poisoning the whole
// document on unmarshal.
type UserRecord struct {
	Coins        int    `json:"coins"`
	Messages     int    `json:"messages"`
	Collection   []Card `json:"collection"`
	LastFreePack string `json:"last_free_pack,omitempty"`
}

// Clone returns a deep copy so callers never alias the stored collection.
func (u UserRecord) Clone() UserRecord {
	out := u
	out.Collection = make([]Card, 0, len(u.Collection))
	for _, c := range u.Collection {
		out.Collection = append(out.Collection, c.Clone())
	}
	return out
}

// CardHolding aggregates duplicate copies of one card for display.
type CardHolding struct {
	Card  Card
	Count int
}

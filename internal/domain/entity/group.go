package entity

import "time"

// Group is a named set of member emails used to share events.
type Group struct {
	ID        string    `json:"id"`         // Random v4 UUID assigned at creation.
	Name      string    `json:"name"`       // Trimmed, non-empty.
	CreatedBy string    `json:"created_by"` // ID of the creating user.
	CreatedAt time.Time `json:"created_at"` // Creation instant.
	Members   []string  `json:"members"`    // Lower-cased unique emails; always includes the creator.
}

// HasMember reports whether email (already lower-cased) is a member.
func (g *Group) HasMember(email string) bool {
	for _, m := range g.Members {
		if m == email {
			return true
		}
	}

	return false
}

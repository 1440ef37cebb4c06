package models

type Genre struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

type Director struct {
	Name  string `json:"Name"`
	Bio   string `json:"Bio"`
	Birth *Date  `json:"Birth,omitempty"`
	Death *Date  `json:"Death,omitempty"`
}

// Movie is a read-only catalog entry.
type Movie struct {
	ID          string   `json:"_id"`
	Title       string   `json:"Title"`
	Description string   `json:"Description"`
	Genre       Genre    `json:"Genre"`
	Director    Director `json:"Director"`
	ImagePath   string   `json:"ImagePath,omitempty"`
	Featured    bool     `json:"Featured,omitempty"`
}

// FilterFavorites returns the movies whose ID is in the user's favorites,
// in catalog order. A nil user has no favorites.
func FilterFavorites(movies []Movie, user *User) []Movie {
	out := make([]Movie, 0)
	if user == nil {
		return out
	}
	for _, m := range movies {
		if user.HasFavorite(m.ID) {
			out = append(out, m)
		}
	}
	return out
}

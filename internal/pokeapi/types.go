package pokeapi

// Проводной формат PokeAPI. Только поля, которые мы реально читаем.

type listResponse struct {
	Results []listItem `json:"results"`
}

type listItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type sprites struct {
	FrontDefault string `json:"front_default"`
	Other        struct {
		OfficialArtwork struct {
			FrontDefault string `json:"front_default"`
		} `json:"official-artwork"`
		Home struct {
			FrontDefault string `json:"front_default"`
		} `json:"home"`
		DreamWorld struct {
			FrontDefault string `json:"front_default"`
		} `json:"dream_world"`
	} `json:"other"`
}

type statEntry struct {
	BaseStat int `json:"base_stat"`
}

type typeEntry struct {
	Type struct {
		Name string `json:"name"`
	} `json:"type"`
}

type detailResponse struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Sprites sprites     `json:"sprites"`
	Stats   []statEntry `json:"stats"`
	Types   []typeEntry `json:"types"`
	Height  int         `json:"height"`
	Weight  int         `json:"weight"`
}

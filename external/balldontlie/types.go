package balldontlie

// Envelope shapes for the balldontlie-style REST API: plain JSON objects with
// cursor-based pagination metadata.
type meta struct {
	NextCursor *int64 `json:"next_cursor"`
	PerPage    int    `json:"per_page"`
}

type gamesEnvelope struct {
	Data []gameItem `json:"data"`
	Meta meta       `json:"meta"`
}

type gameItem struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"`
	Status      string   `json:"status"`
	Season      int      `json:"season"`
	HomeTeam    teamItem `json:"home_team"`
	VisitorTeam teamItem `json:"visitor_team"`
}

type teamItem struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

type playsEnvelope struct {
	Data []playItem `json:"data"`
	Meta meta       `json:"meta"`
}

// playItem carries an explicit free-text type plus player, made and team
// fields; descriptions are single-sided, unlike the stats tables.
type playItem struct {
	ID          int64      `json:"id"`
	Period      int        `json:"period"`
	Type        string     `json:"type"`
	Description string     `json:"description"`
	Made        *bool      `json:"made"`
	TeamID      int64      `json:"team_id"`
	Player      *playerRef `json:"player"`
}

type playerRef struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

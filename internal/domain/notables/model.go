package notables

// Entry is static reference data: the players a team most plausibly sends to
// the opening tip and to the first shot attempt. Used only by the placeholder
// policy when play-by-play data is permanently unavailable.
type Entry struct {
	Team   string
	Center string
	Scorer string
}

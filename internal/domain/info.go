package domain

// InfoEntry is a text block of the info page
type InfoEntry struct {
	ID      int64
	Title   string
	Content string
	Order   int
}

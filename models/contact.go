package models

// ContactSubmission is one entry in the append-only contact message log.
// Timestamp is an ISO-8601 string, matching the persisted blob shape.
type ContactSubmission struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

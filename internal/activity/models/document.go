package models

// Document records the metadata of one submitted achievement proof. File
// contents are never retained, only the filename and content type descriptor.
//
// There is no (email, filename) uniqueness: repeated submissions produce
// separate records, and lookups by that pair touch only the first match in
// insertion order.
type Document struct {
	Email       string `json:"email"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Score       int    `json:"score"`
	Verified    bool   `json:"verified"`
}

// ParticipantScore is one row of the sorted-participants view. Score is nil
// when the participant has no verified document in the activity.
type ParticipantScore struct {
	Email string `json:"email"`
	Score *int   `json:"score"`
}

package models

// UserIdentity is the authenticated principal tokens are issued for.
// Identities are not persisted; they are resolved on demand from the fixed
// directory or synthesized deterministically from the email address, so the
// same email always maps to the same subject id.
type UserIdentity struct {
	SubjectID   string   `json:"subject_id"`
	DisplayName string   `json:"display_name"`
	UPN         string   `json:"upn"`
	Department  string   `json:"department,omitempty"`
	JobTitle    string   `json:"job_title,omitempty"`
	Roles       []string `json:"roles"`
}

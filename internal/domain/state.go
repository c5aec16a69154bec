package entity

// State is one row of the fixed availability-state catalog. The workflow
// engine looks states up and assigns them to listings; it never creates or
// deletes them.
type State struct {
	ID   int    `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// StateIDs maps the three availability states the workflow engine references
// to their catalog ids. Resolved once at startup from configuration and
// injected into the services.
type StateIDs struct {
	Published int
	InProcess int
	Approved  int
}

package todo

// Session is the single edit slot. The zero value means no edit is in
// progress.
type Session struct {
	ActiveID string
	Draft    string
}

// Active reports whether an entry is being edited.
func (s Session) Active() bool {
	return s.ActiveID != ""
}

// Editing reports whether id is the entry being edited.
func (s Session) Editing(id string) bool {
	return s.Active() && s.ActiveID == id
}

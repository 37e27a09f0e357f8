package enrollment

import "time"

// Enrollment is a user's registration record for the event. Its presence is
// the first prerequisite for any hotel action.
type Enrollment struct {
	id        int64
	userID    int64
	createdAt time.Time
}

// Reconstruct rebuilds an Enrollment from persistence data.
func Reconstruct(id, userID int64, createdAt time.Time) *Enrollment {
	return &Enrollment{id: id, userID: userID, createdAt: createdAt}
}

// ID returns the enrollment identifier.
func (e *Enrollment) ID() int64 { return e.id }

// UserID returns the enrolled user's identifier.
func (e *Enrollment) UserID() int64 { return e.userID }

// CreatedAt returns the creation timestamp.
func (e *Enrollment) CreatedAt() time.Time { return e.createdAt }

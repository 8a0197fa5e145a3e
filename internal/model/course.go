package model

import "time"

// Course represents a scheduled course owned by a teacher
type Course struct {
	TeacherID int        `db:"teacher_id" json:"teacher_id"`
	ID        *int       `db:"id" json:"id"`
	Name      string     `db:"name" json:"name"`
	Time      *time.Time `db:"time" json:"time"`
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"courses/internal/apperror"
	"courses/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type postgresCourseRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresCourseRepo creates a CourseRepository backed by the course table
func NewPostgresCourseRepo(pool *pgxpool.Pool, logger zerolog.Logger) CourseRepository {
	return &postgresCourseRepo{pool: pool, logger: logger}
}

// CreateCourse inserts a new course and returns the created record.
// The database assigns both id and time.
func (r *postgresCourseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO course (teacher_id, name)
		VALUES ($1, $2)
		RETURNING id, teacher_id, name, time
	`
	var id int
	err := r.pool.QueryRow(ctx, query, c.TeacherID, c.Name).
		Scan(&id, &c.TeacherID, &c.Name, &c.Time)
	if err != nil {
		return apperror.Storage("inserting course", fmt.Errorf("teacher %d: %w", c.TeacherID, err))
	}
	c.ID = &id
	return nil
}

// GetCoursesByTeacherID retrieves all courses of a teacher ordered by id
func (r *postgresCourseRepo) GetCoursesByTeacherID(ctx context.Context, teacherID int) ([]model.Course, error) {
	query := `
		SELECT id, teacher_id, name, time
		FROM course
		WHERE teacher_id = $1
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, teacherID)
	if err != nil {
		return nil, apperror.Storage("querying courses", fmt.Errorf("teacher %d: %w", teacherID, err))
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, apperror.Storage("scanning course row", err)
		}
		courses = append(courses, *course)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterating course rows", err)
	}

	if len(courses) == 0 {
		return nil, apperror.NotFound(msgCoursesNotFound)
	}
	return courses, nil
}

// GetCourseByID retrieves a single course of a teacher
func (r *postgresCourseRepo) GetCourseByID(ctx context.Context, teacherID, courseID int) (*model.Course, error) {
	query := `
		SELECT id, teacher_id, name, time
		FROM course
		WHERE teacher_id = $1 AND id = $2
	`
	course, err := scanCourse(r.pool.QueryRow(ctx, query, teacherID, courseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound(msgCourseNotFound)
		}
		return nil, apperror.Storage("querying course", fmt.Errorf("teacher %d course %d: %w", teacherID, courseID, err))
	}
	return course, nil
}

func (r *postgresCourseRepo) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return apperror.Storage("pinging database", err)
	}
	return nil
}

func scanCourse(row pgx.Row) (*model.Course, error) {
	var (
		c  model.Course
		id int
	)
	if err := row.Scan(&id, &c.TeacherID, &c.Name, &c.Time); err != nil {
		return nil, err
	}
	c.ID = &id
	return &c, nil
}

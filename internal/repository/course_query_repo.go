package repository

import (
	"context"
	"fmt"

	"courses/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseQueryRepository runs ad-hoc maintenance queries against the course table
type CourseQueryRepository interface {
	ListAllCourses(ctx context.Context) ([]model.Course, error)
	// FindCoursesByID returns rows with the given id across every teacher
	FindCoursesByID(ctx context.Context, courseID int) ([]model.Course, error)
	// RenameAllCourses sets every course's name and reports how many rows changed
	RenameAllCourses(ctx context.Context, name string) (int64, error)
}

type courseQueryRepo struct {
	pool *pgxpool.Pool
}

func NewCourseQueryRepo(pool *pgxpool.Pool) CourseQueryRepository {
	return &courseQueryRepo{pool: pool}
}

func (r *courseQueryRepo) ListAllCourses(ctx context.Context) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, teacher_id, name, time FROM course ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying all courses: %w", err)
	}
	return collectCourses(rows)
}

func (r *courseQueryRepo) FindCoursesByID(ctx context.Context, courseID int) ([]model.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, teacher_id, name, time FROM course WHERE id = $1`, courseID)
	if err != nil {
		return nil, fmt.Errorf("querying course %d: %w", courseID, err)
	}
	return collectCourses(rows)
}

func (r *courseQueryRepo) RenameAllCourses(ctx context.Context, name string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE course SET name = $1`, name)
	if err != nil {
		return 0, fmt.Errorf("renaming courses: %w", err)
	}
	return tag.RowsAffected(), nil
}

func collectCourses(rows pgx.Rows) ([]model.Course, error) {
	courses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Course, error) {
		c, err := scanCourse(row)
		if err != nil {
			return model.Course{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning course rows: %w", err)
	}
	return courses, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/daybreak-app/daybreak/internal/calendar"
	"github.com/daybreak-app/daybreak/internal/database"
	"github.com/daybreak-app/daybreak/internal/models"
	"github.com/daybreak-app/daybreak/internal/recurrence"
	"github.com/daybreak-app/daybreak/internal/rhythm"
)

// TaskRepository persists task-list items.
type TaskRepository struct {
	db      *database.DB
	history *HistoryRepository
}

func NewTaskRepository(db *database.DB, history *HistoryRepository) *TaskRepository {
	return &TaskRepository{db: db, history: history}
}

const taskColumns = `task_id, user_id, title, description, rule, due_date, completed_at, created_at`

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	var due *time.Time
	if task.DueDate != nil {
		t := task.DueDate.Time(time.UTC)
		due = &t
	}
	return r.db.Pool.QueryRow(ctx,
		`INSERT INTO task (user_id, title, description, rule, due_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING task_id, created_at`,
		task.UserID, task.Title, task.Description, task.Rule, due,
	).Scan(&task.TaskID, &task.CreatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, taskID uuid.UUID, userID int64) (*models.Task, error) {
	row := r.db.Pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM task WHERE task_id = $1 AND user_id = $2`,
		taskID, userID,
	)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, rhythm.ErrNotFound
	}
	return task, err
}

// ListDue returns open tasks due on or before the given date.
func (r *TaskRepository) ListDue(ctx context.Context, userID int64, today calendar.Date) ([]*models.Task, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+taskColumns+` FROM task
		 WHERE user_id = $1 AND completed_at IS NULL AND due_date IS NOT NULL AND due_date <= $2
		 ORDER BY due_date ASC, created_at ASC`,
		userID, today.Time(time.UTC),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Complete marks a task done today. A recurring task gets a completion
// record appended to its habit history and its due date rolled forward
// by the recurrence calculator; a one-off task just closes.
func (r *TaskRepository) Complete(ctx context.Context, task *models.Task, today calendar.Date) error {
	if !task.IsRecurring() {
		now := time.Now()
		task.CompletedAt = &now
		_, err := r.db.Pool.Exec(ctx,
			`UPDATE task SET completed_at = $1 WHERE task_id = $2`,
			now, task.TaskID,
		)
		return err
	}

	if err := r.history.Record(ctx, task.UserID, task.HabitKey(), today, true); err != nil {
		return fmt.Errorf("record task completion: %w", err)
	}

	next := recurrence.NextTaskDate(today, task.Rule)
	task.DueDate = &next
	_, err := r.db.Pool.Exec(ctx,
		`UPDATE task SET due_date = $1 WHERE task_id = $2`,
		next.Time(time.UTC), task.TaskID,
	)
	if err != nil {
		return fmt.Errorf("roll task due date: %w", err)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID uuid.UUID, userID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`DELETE FROM task WHERE task_id = $1 AND user_id = $2`,
		taskID, userID,
	)
	return err
}

func scanTask(row pgx.Row) (*models.Task, error) {
	task := &models.Task{}
	var due *time.Time
	err := row.Scan(
		&task.TaskID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Rule,
		&due,
		&task.CompletedAt,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if due != nil {
		d := calendar.DateOf(*due)
		task.DueDate = &d
	}
	return task, nil
}

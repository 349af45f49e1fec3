package repo

import (
	"context"
	"time"

	dom "github.com/MasteriNeuron/ToDo-List-Project/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. Every operation is scoped by the
// owning user's ID; a task belonging to another user behaves exactly like a
// missing row.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	List(ctx context.Context, userID int64) ([]dom.Task, error)
	Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error)
	Delete(ctx context.Context, userID, id int64) error
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `id, user_id, title, description, due_date, due_time, priority, status, created_at`

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (dom.Task, error) {
	var t dom.Task
	var due pgtype.Time
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.DueDate, &due,
		&t.Priority, &t.Status, &t.CreatedAt)
	if err != nil {
		return dom.Task{}, err
	}
	t.DueTime = clockFromPG(due)
	return t, nil
}

// clockFromPG converts a Postgres TIME value (microseconds since midnight)
// to a *time.Time carrying only the clock part.
func clockFromPG(v pgtype.Time) *time.Time {
	if !v.Valid {
		return nil
	}
	secs := v.Microseconds / 1_000_000
	t := time.Date(0, time.January, 1, int(secs/3600), int(secs/60%60), int(secs%60), 0, time.UTC)
	return &t
}

// clockToPG converts a clock-only *time.Time to a Postgres TIME value.
func clockToPG(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	secs := int64(t.Hour())*3600 + int64(t.Minute())*60 + int64(t.Second())
	return pgtype.Time{Microseconds: secs * 1_000_000, Valid: true}
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, title, description, due_date, due_time, priority, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + taskColumns
	row := r.db.QueryRow(ctx, query, t.UserID, t.Title, t.Description, t.DueDate,
		clockToPG(t.DueTime), t.Priority, t.Status)
	return scanTask(row)
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`
	return scanTask(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGTaskRepo) List(ctx context.Context, userID int64) ([]dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, due_date = $5, due_time = $6, priority = $7, status = $8
		WHERE id = $1 AND user_id = $2
		RETURNING ` + taskColumns
	row := r.db.QueryRow(ctx, query, id, userID, patch.Title, patch.Description,
		patch.DueDate, clockToPG(patch.DueTime), patch.Priority, patch.Status)
	return scanTask(row)
}

// Delete removes the row permanently. Returns pgx.ErrNoRows when the task
// does not exist or belongs to another user.
func (r *PGTaskRepo) Delete(ctx context.Context, userID, id int64) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

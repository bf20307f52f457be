// Package gateway is the HTTP persistence boundary: a thin JSON client for
// the dayflow resource server's habits, checkIns, and tasks collections.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"dayflow/internal/logger"
	"dayflow/internal/models"
)

// Error reports a failed gateway call. Op and Target carry the intent
// (operation name and record id) so the caller can offer a retry.
type Error struct {
	Op     string
	Target string
	Status int // zero when the request never completed
	Err    error
}

func (e *Error) Error() string {
	target := e.Target
	if target == "" {
		target = "-"
	}
	if e.Status != 0 {
		return fmt.Sprintf("gateway %s %s: status %d", e.Op, target, e.Status)
	}
	return fmt.Sprintf("gateway %s %s: %v", e.Op, target, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Client talks to the resource server. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the server at baseURL (e.g. http://localhost:3001).
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ListHabits fetches every habit. CheckIns are not populated; they live in
// their own collection and are joined by the caller.
func (c *Client) ListHabits(ctx context.Context) ([]models.Habit, error) {
	var habits []models.Habit
	if err := c.getWithRetry(ctx, "/habits", &habits, "list habits"); err != nil {
		return nil, err
	}
	return habits, nil
}

// ListCheckIns fetches every check-in record, each carrying its habitId.
func (c *Client) ListCheckIns(ctx context.Context) ([]models.CheckIn, error) {
	var checkIns []models.CheckIn
	if err := c.getWithRetry(ctx, "/checkIns", &checkIns, "list check-ins"); err != nil {
		return nil, err
	}
	return checkIns, nil
}

// ListTasks fetches every task, including soft-deleted ones.
func (c *Client) ListTasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := c.getWithRetry(ctx, "/tasks", &tasks, "list tasks"); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateHabit persists a new habit and returns the stored record.
func (c *Client) CreateHabit(ctx context.Context, habit models.Habit) (models.Habit, error) {
	habit.CheckIns = nil
	var created models.Habit
	err := c.do(ctx, http.MethodPost, "/habits", habit, &created, "create habit", habit.ID)
	return created, err
}

// HabitPatch is a partial habit update. Nil fields are left untouched.
// StartDate is deliberately absent: it is immutable after creation.
type HabitPatch struct {
	Name      *string         `json:"name,omitempty"`
	Frequency *int            `json:"frequency,omitempty"`
	Section   *models.Section `json:"section,omitempty"`
}

// UpdateHabit applies a partial update and returns the stored record.
func (c *Client) UpdateHabit(ctx context.Context, id string, patch HabitPatch) (models.Habit, error) {
	var updated models.Habit
	err := c.do(ctx, http.MethodPatch, "/habits/"+id, patch, &updated, "update habit", id)
	return updated, err
}

// DeleteHabit removes a habit record. Associated check-ins are the caller's
// responsibility (see service cascade delete).
func (c *Client) DeleteHabit(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/habits/"+id, nil, nil, "delete habit", id)
}

// CreateCheckIn persists a new check-in; the server assigns its id.
func (c *Client) CreateCheckIn(ctx context.Context, habitID, date string, isChecked bool) (models.CheckIn, error) {
	body := models.CheckIn{HabitID: habitID, Date: date, IsChecked: isChecked}
	var created models.CheckIn
	err := c.do(ctx, http.MethodPost, "/checkIns", body, &created, "create check-in", habitID+"/"+date)
	return created, err
}

// UpdateCheckIn flips an existing check-in's checked state.
func (c *Client) UpdateCheckIn(ctx context.Context, id string, isChecked bool) (models.CheckIn, error) {
	body := struct {
		IsChecked bool `json:"isChecked"`
	}{isChecked}
	var updated models.CheckIn
	err := c.do(ctx, http.MethodPatch, "/checkIns/"+id, body, &updated, "update check-in", id)
	return updated, err
}

// DeleteCheckIn removes a check-in record.
func (c *Client) DeleteCheckIn(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/checkIns/"+id, nil, nil, "delete check-in", id)
}

// CreateTask persists a new task and returns the stored record.
func (c *Client) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	var created models.Task
	err := c.do(ctx, http.MethodPost, "/tasks", task, &created, "create task", task.ID)
	return created, err
}

// UpdateTask applies a partial update from the given fields. A map rather
// than a struct so callers can send explicit nulls (clearing deletedAt on
// restore).
func (c *Client) UpdateTask(ctx context.Context, id string, fields map[string]any) (models.Task, error) {
	var updated models.Task
	err := c.do(ctx, http.MethodPatch, "/tasks/"+id, fields, &updated, "update task", id)
	return updated, err
}

// DeleteTask permanently removes a task record. Soft delete is an UpdateTask
// setting the deleted flag.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+id, nil, nil, "delete task", id)
}

// getWithRetry wraps list fetches in fibonacci backoff. Only reads are
// retried automatically; mutations surface their failure so the user decides.
func (c *Client) getWithRetry(ctx context.Context, path string, out any, op string) error {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, nil, out, op, "")
		if err == nil {
			return nil
		}
		// Transport failures and 5xx responses are transient; everything
		// else (4xx, decode errors) will not get better on its own.
		var gerr *Error
		if errors.As(err, &gerr) && (gerr.Status == 0 || gerr.Status >= 500) {
			logger.Debug("retrying gateway read", "op", op, "error", err)
			return retry.RetryableError(err)
		}
		return err
	})
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, op, target string) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Op: op, Target: target, Err: fmt.Errorf("marshal request: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Op: op, Target: target, Err: fmt.Errorf("create request: %w", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Op: op, Target: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &Error{Op: op, Target: target, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Op: op, Target: target, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

package backend

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"duelist/internal/utils"

	"github.com/google/uuid"
)

// ItemStore persists items.
type ItemStore interface {
	AddItem(item Item) (Item, error)
	GetItem(id string) (*Item, error)
	GetItems(filter ItemFilter) ([]Item, error)
	UpdateItem(item Item) error
	SetCompleted(id string, completed bool) (*Item, error)
	DeleteItem(id string) error
	ClearCompleted() (int, error)
	Counts(now time.Time) (ListCounts, error)
	Close() error
}

// ItemFilter selects items for GetItems. An empty List means ListAll.
// Now is required for the today and late lists.
type ItemFilter struct {
	List          List
	Now           time.Time
	TitleContains string
	Limit         int
}

// SQLiteStore implements ItemStore on a local SQLite database
type SQLiteStore struct {
	db  *Database
	now func() time.Time
	loc *time.Location
}

// StoreOption configures a SQLiteStore.
type StoreOption func(*SQLiteStore)

// WithStoreClock sets the clock used for created/completed timestamps.
func WithStoreClock(now func() time.Time) StoreOption {
	return func(s *SQLiteStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithStoreLocation sets the location loaded timestamps are returned in.
func WithStoreLocation(loc *time.Location) StoreOption {
	return func(s *SQLiteStore) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewSQLiteStore opens (and if needed creates) the database at dbPath.
func NewSQLiteStore(dbPath string, opts ...StoreOption) (*SQLiteStore, error) {
	db, err := InitDatabase(dbPath)
	if err != nil {
		return nil, &SQLiteError{Op: "init", Err: err}
	}

	store := &SQLiteStore{
		db:  db,
		now: time.Now,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(store)
	}

	utils.Debugf("Opened item database at %s", dbPath)
	return store, nil
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

const itemColumns = `id, title, input, due_date, completed, created_at, completed_at`

// AddItem stores a new item, assigning an ID and creation time when unset.
func (s *SQLiteStore) AddItem(item Item) (Item, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = s.now()
	}
	if item.Completed && item.CompletedAt == nil {
		t := s.now()
		item.CompletedAt = &t
	}

	err := utils.LogOperationf("add item %s", func() error {
		_, err := s.db.Exec(
			`INSERT INTO items (`+itemColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			item.ID,
			item.Title,
			item.Input,
			timeToNullInt64(item.Due),
			boolToInt(item.Completed),
			item.CreatedAt.Unix(),
			timeToNullInt64(item.CompletedAt),
		)
		return err
	}, item.ID)
	if err != nil {
		return Item{}, &SQLiteError{Op: "AddItem", ItemID: item.ID, Err: err}
	}

	return s.normalize(item), nil
}

// GetItem returns the item with the given ID or ErrItemNotFound.
func (s *SQLiteStore) GetItem(id string) (*Item, error) {
	row := s.db.QueryRow(`SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := s.scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &SQLiteError{Op: "GetItem", ItemID: id, Err: ErrItemNotFound}
	}
	if err != nil {
		return nil, &SQLiteError{Op: "GetItem", ItemID: id, Err: err}
	}
	return &item, nil
}

// GetItems returns the items in filter.List ordered by due date (items
// without one last), then newest first.
func (s *SQLiteStore) GetItems(filter ItemFilter) ([]Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1 = 1`
	args := []interface{}{}

	query, args, err := s.applyFilter(query, args, filter)
	if err != nil {
		return nil, &SQLiteError{Op: "GetItems", Err: err}
	}

	query += " ORDER BY due_date IS NULL, due_date ASC, created_at DESC, rowid DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, &SQLiteError{Op: "GetItems", Err: err}
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		item, err := s.scanItem(rows)
		if err != nil {
			return nil, &SQLiteError{Op: "GetItems", Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &SQLiteError{Op: "GetItems", Err: err}
	}

	return items, nil
}

// applyFilter adds WHERE clauses for the list and title search
func (s *SQLiteStore) applyFilter(query string, args []interface{}, filter ItemFilter) (string, []interface{}, error) {
	list := filter.List
	if list == "" {
		list = ListAll
	}

	if (list == ListToday || list == ListLate) && filter.Now.IsZero() {
		return "", nil, fmt.Errorf("list %s needs the current time", list)
	}
	now := filter.Now.In(s.loc)

	switch list {
	case ListAll:
		query += " AND completed = 0"
	case ListToday:
		start, end := dayBounds(now)
		query += " AND completed = 0 AND due_date >= ? AND due_date < ?"
		args = append(args, start.Unix(), end.Unix())
	case ListLate:
		query += " AND completed = 0 AND due_date < ?"
		args = append(args, now.Unix())
	case ListDone:
		query += " AND completed = 1"
	default:
		return "", nil, fmt.Errorf("unknown list %q", list)
	}

	if filter.TitleContains != "" {
		query += " AND LOWER(title) LIKE LOWER(?)"
		args = append(args, "%"+filter.TitleContains+"%")
	}

	return query, args, nil
}

// UpdateItem rewrites title, input, due date and completion of an existing item.
func (s *SQLiteStore) UpdateItem(item Item) error {
	if item.Completed && item.CompletedAt == nil {
		t := s.now()
		item.CompletedAt = &t
	}
	if !item.Completed {
		item.CompletedAt = nil
	}

	err := utils.LogOperationf("update item %s", func() error {
		res, err := s.db.Exec(`
			UPDATE items
			SET title = ?, input = ?, due_date = ?, completed = ?, completed_at = ?
			WHERE id = ?
		`,
			item.Title,
			item.Input,
			timeToNullInt64(item.Due),
			boolToInt(item.Completed),
			timeToNullInt64(item.CompletedAt),
			item.ID,
		)
		if err != nil {
			return err
		}
		return expectOneRow(res)
	}, item.ID)
	if err != nil {
		return &SQLiteError{Op: "UpdateItem", ItemID: item.ID, Err: err}
	}
	return nil
}

// SetCompleted marks an item done or not done and returns the updated item.
func (s *SQLiteStore) SetCompleted(id string, completed bool) (*Item, error) {
	var completedAt sql.NullInt64
	if completed {
		completedAt = sql.NullInt64{Int64: s.now().Unix(), Valid: true}
	}

	err := utils.LogOperationf("set item %s completed=%t", func() error {
		res, err := s.db.Exec(
			`UPDATE items SET completed = ?, completed_at = ? WHERE id = ?`,
			boolToInt(completed), completedAt, id,
		)
		if err != nil {
			return err
		}
		return expectOneRow(res)
	}, id, completed)
	if err != nil {
		return nil, &SQLiteError{Op: "SetCompleted", ItemID: id, Err: err}
	}

	return s.GetItem(id)
}

// DeleteItem removes an item permanently
func (s *SQLiteStore) DeleteItem(id string) error {
	err := utils.LogOperationf("delete item %s", func() error {
		res, err := s.db.Exec(`DELETE FROM items WHERE id = ?`, id)
		if err != nil {
			return err
		}
		return expectOneRow(res)
	}, id)
	if err != nil {
		return &SQLiteError{Op: "DeleteItem", ItemID: id, Err: err}
	}
	return nil
}

// ClearCompleted deletes every completed item and returns how many went.
func (s *SQLiteStore) ClearCompleted() (int, error) {
	res, err := s.db.Exec(`DELETE FROM items WHERE completed = 1`)
	if err != nil {
		return 0, &SQLiteError{Op: "ClearCompleted", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, &SQLiteError{Op: "ClearCompleted", Err: err}
	}
	utils.Debugf("Cleared %d completed items", n)
	return int(n), nil
}

// Compact vacuums the database file.
func (s *SQLiteStore) Compact() error {
	if err := utils.LogOperation("compact database", s.db.Vacuum); err != nil {
		return &SQLiteError{Op: "Compact", Err: err}
	}
	return nil
}

// Counts returns the size of every list at now.
func (s *SQLiteStore) Counts(now time.Time) (ListCounts, error) {
	now = now.In(s.loc)
	start, end := dayBounds(now)

	var counts ListCounts
	err := s.db.QueryRow(`
		SELECT
			COALESCE(SUM(CASE WHEN completed = 0 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 0 AND due_date >= ? AND due_date < ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 0 AND due_date < ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN completed = 1 THEN 1 ELSE 0 END), 0)
		FROM items
	`, start.Unix(), end.Unix(), now.Unix()).Scan(&counts.All, &counts.Today, &counts.Late, &counts.Done)
	if err != nil {
		return ListCounts{}, &SQLiteError{Op: "Counts", Err: err}
	}
	return counts, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *SQLiteStore) scanItem(row rowScanner) (Item, error) {
	var item Item
	var dueDate, completedAt sql.NullInt64
	var completed int
	var createdAt int64

	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Input,
		&dueDate,
		&completed,
		&createdAt,
		&completedAt,
	)
	if err != nil {
		return Item{}, err
	}

	item.Completed = completed != 0
	item.CreatedAt = time.Unix(createdAt, 0).In(s.loc)
	item.Due = s.nullInt64ToTime(dueDate)
	item.CompletedAt = s.nullInt64ToTime(completedAt)
	return item, nil
}

// normalize truncates timestamps to what the database keeps.
func (s *SQLiteStore) normalize(item Item) Item {
	item.CreatedAt = time.Unix(item.CreatedAt.Unix(), 0).In(s.loc)
	item.Due = s.nullInt64ToTime(timeToNullInt64(item.Due))
	item.CompletedAt = s.nullInt64ToTime(timeToNullInt64(item.CompletedAt))
	return item
}

// Helper functions

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// timeToNullInt64 converts *time.Time to sql.NullInt64
func timeToNullInt64(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{Valid: false}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}

func (s *SQLiteStore) nullInt64ToTime(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.Unix(v.Int64, 0).In(s.loc)
	return &t
}

// Stats returns counts and size information for the database.
func (s *SQLiteStore) Stats() (DatabaseStats, error) {
	stats, err := s.db.GetStats()
	if err != nil {
		return stats, &SQLiteError{Op: "Stats", Err: err}
	}
	return stats, nil
}

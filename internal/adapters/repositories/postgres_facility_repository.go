package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"airport-nav-service/internal/domain"
	"airport-nav-service/internal/platform/obs"
	"airport-nav-service/internal/ports"
)

// Postgres-backed implementation of the FacilityRepository port.
type PostgresFacilityRepository struct{ DB *sql.DB }

func NewPostgresFacilityRepository(db *sql.DB) *PostgresFacilityRepository {
	return &PostgresFacilityRepository{DB: db}
}

const facilityColumns = "id, name, category, coordinates, description, created_at"

func scanFacility(row interface{ Scan(...any) error }) (*domain.Facility, error) {
	var f domain.Facility
	var description sql.NullString
	if err := row.Scan(&f.ID, &f.Name, &f.Category, &f.Coordinates, &description, &f.CreatedAt); err != nil {
		return nil, err
	}
	f.Description = description.String
	return &f, nil
}

func collectFacilities(rows *sql.Rows) ([]*domain.Facility, error) {
	defer rows.Close()

	facilities := make([]*domain.Facility, 0, 16)
	for rows.Next() {
		f, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		facilities = append(facilities, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return facilities, nil
}

// Return all facilities ordered by ID.
func (r *PostgresFacilityRepository) List(ctx context.Context) (_ []*domain.Facility, err error) {
	defer obs.Time(ctx, "facilities.List")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}

	query := `
	SELECT ` + facilityColumns + `
	FROM airport_facilities
	ORDER BY id;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list facilities: query airport_facilities table: %w", err)
	}

	facilities, err := collectFacilities(rows)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	return facilities, nil
}

// Return one facility by ID, or ErrNotFound.
func (r *PostgresFacilityRepository) Get(ctx context.Context, id int64) (_ *domain.Facility, err error) {
	defer obs.Time(ctx, "facilities.Get")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}

	query := `
	SELECT ` + facilityColumns + `
	FROM airport_facilities
	WHERE id = $1;
	`
	f, err := scanFacility(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get facility id=%d: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get facility id=%d: %w", id, err)
	}

	return f, nil
}

// Insert one facility; the database assigns id and created_at.
func (r *PostgresFacilityRepository) Create(ctx context.Context, f *domain.Facility) (err error) {
	defer obs.Time(ctx, "facilities.Create")(&err)

	if r.DB == nil {
		return errors.New("facility repository: DB is nil")
	}

	query := `
	INSERT INTO airport_facilities (name, category, coordinates, description)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at;
	`
	row := r.DB.QueryRowContext(ctx, query, f.Name, f.Category, f.Coordinates, f.Description)
	if err := row.Scan(&f.ID, &f.CreatedAt); err != nil {
		return fmt.Errorf("create facility %q: %w", f.Name, err)
	}

	return nil
}

// Insert several facilities in one transaction; any failure rolls back all.
func (r *PostgresFacilityRepository) CreateBatch(ctx context.Context, fs []*domain.Facility) (err error) {
	defer obs.Time(ctx, "facilities.CreateBatch")(&err)

	if r.DB == nil {
		return errors.New("facility repository: DB is nil")
	}
	if len(fs) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("create facilities batch: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO airport_facilities (name, category, coordinates, description)
	VALUES ($1, $2, $3, $4)
	RETURNING id, created_at;
	`)
	if err != nil {
		return fmt.Errorf("create facilities batch: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range fs {
		row := stmt.QueryRowContext(ctx, f.Name, f.Category, f.Coordinates, f.Description)
		if err := row.Scan(&f.ID, &f.CreatedAt); err != nil {
			return fmt.Errorf("create facilities batch: insert %q: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create facilities batch: commit tx: %w", err)
	}

	return nil
}

// setClause builds the SET fragment and argument list for an update.
// Column names are fixed; only values are parameterized.
func setClause(upd ports.FacilityUpdate) (string, []any) {
	assignments := make([]string, 0, 4)
	args := make([]any, 0, 4)

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	add("name", upd.Name)
	add("category", upd.Category)
	add("coordinates", upd.Coordinates)
	add("description", upd.Description)

	return strings.Join(assignments, ", "), args
}

// Overwrite the given fields of one facility and return the updated record.
func (r *PostgresFacilityRepository) Update(ctx context.Context, id int64, upd ports.FacilityUpdate) (_ *domain.Facility, err error) {
	defer obs.Time(ctx, "facilities.Update")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}
	if upd.IsEmpty() {
		return r.Get(ctx, id)
	}

	set, args := setClause(upd)
	args = append(args, id)

	query := fmt.Sprintf(`
	UPDATE airport_facilities
	SET %s
	WHERE id = $%d
	RETURNING %s;
	`, set, len(args), facilityColumns)

	f, err := scanFacility(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("update facility id=%d: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update facility id=%d: %w", id, err)
	}

	return f, nil
}

// Overwrite the given fields of every listed facility and return the
// updated records. Returns ErrNotFound when no listed ID exists.
func (r *PostgresFacilityRepository) UpdateBatch(ctx context.Context, ids []int64, upd ports.FacilityUpdate) (_ []*domain.Facility, err error) {
	defer obs.Time(ctx, "facilities.UpdateBatch")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}
	if len(ids) == 0 {
		return nil, errors.New("update facilities batch: ids must not be empty")
	}
	if upd.IsEmpty() {
		return nil, errors.New("update facilities batch: no fields to update")
	}

	set, args := setClause(upd)
	args = append(args, ids)

	query := fmt.Sprintf(`
	UPDATE airport_facilities
	SET %s
	WHERE id = ANY($%d::bigint[])
	RETURNING %s;
	`, set, len(args), facilityColumns)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update facilities batch: %w", err)
	}

	facilities, err := collectFacilities(rows)
	if err != nil {
		return nil, fmt.Errorf("update facilities batch: %w", err)
	}
	if len(facilities) == 0 {
		return nil, fmt.Errorf("update facilities batch: %w", ports.ErrNotFound)
	}

	return facilities, nil
}

// Delete one facility and return the removed record.
func (r *PostgresFacilityRepository) Delete(ctx context.Context, id int64) (_ *domain.Facility, err error) {
	defer obs.Time(ctx, "facilities.Delete")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}

	query := `
	DELETE FROM airport_facilities
	WHERE id = $1
	RETURNING ` + facilityColumns + `;
	`
	f, err := scanFacility(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("delete facility id=%d: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("delete facility id=%d: %w", id, err)
	}

	return f, nil
}

// Delete every facility and return the removed records. Returns ErrNotFound
// when the table was already empty.
func (r *PostgresFacilityRepository) Clear(ctx context.Context) (_ []*domain.Facility, err error) {
	defer obs.Time(ctx, "facilities.Clear")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}

	query := `
	DELETE FROM airport_facilities
	RETURNING ` + facilityColumns + `;
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("clear facilities: %w", err)
	}

	facilities, err := collectFacilities(rows)
	if err != nil {
		return nil, fmt.Errorf("clear facilities: %w", err)
	}
	if len(facilities) == 0 {
		return nil, fmt.Errorf("clear facilities: %w", ports.ErrNotFound)
	}

	return facilities, nil
}

// Return facilities matching the filter with case-insensitive substring
// matches, ordered by ID.
func (r *PostgresFacilityRepository) Search(ctx context.Context, filter ports.FacilityFilter) (_ []*domain.Facility, err error) {
	defer obs.Time(ctx, "facilities.Search")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}

	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+value+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}

	add("name", filter.Name)
	add("category", filter.Category)
	add("coordinates", filter.Coordinates)

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
	SELECT %s
	FROM airport_facilities
	%s
	ORDER BY id;
	`, facilityColumns, where)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("search facilities: %w", err)
	}

	facilities, err := collectFacilities(rows)
	if err != nil {
		return nil, fmt.Errorf("search facilities: %w", err)
	}
	return facilities, nil
}

// Compute table-wide statistics: total count, per-category counts, and the
// most recently added facility.
func (r *PostgresFacilityRepository) Stats(ctx context.Context) (_ *ports.FacilityStats, err error) {
	defer obs.Time(ctx, "facilities.Stats")(&err)

	if r.DB == nil {
		return nil, errors.New("facility repository: DB is nil")
	}

	stats := &ports.FacilityStats{ByCategory: make(map[string]int)}

	row := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM airport_facilities;`)
	if err := row.Scan(&stats.Total); err != nil {
		return nil, fmt.Errorf("facility stats: count: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, `
	SELECT category, COUNT(id)
	FROM airport_facilities
	GROUP BY category;
	`)
	if err != nil {
		return nil, fmt.Errorf("facility stats: category counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var count int
		if err := rows.Scan(&category, &count); err != nil {
			return nil, fmt.Errorf("facility stats: scan category row: %w", err)
		}
		stats.ByCategory[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("facility stats: category row iteration: %w", err)
	}

	latest, err := scanFacility(r.DB.QueryRowContext(ctx, `
	SELECT `+facilityColumns+`
	FROM airport_facilities
	ORDER BY id DESC
	LIMIT 1;
	`))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("facility stats: latest facility: %w", err)
	}
	if err == nil {
		stats.Latest = latest
	}

	return stats, nil
}

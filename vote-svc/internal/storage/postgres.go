package storage

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"lunch-vote/vote-svc/internal/domain"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func translateErr(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrUniqueViolation
	}
	return err
}

func (r *PostgresRepository) CreateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO restaurants (title, address)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, rest.Title, rest.Address).Scan(&rest.ID, &rest.CreatedAt, &rest.UpdatedAt)
	return translateErr(err)
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, title, address, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`, id).Scan(&rest.ID, &rest.Title, &rest.Address, &rest.CreatedAt, &rest.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// UpdateRestaurant returns sql.ErrNoRows when the id does not exist.
func (r *PostgresRepository) UpdateRestaurant(ctx context.Context, rest *domain.Restaurant) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE restaurants
		SET title = $1, address = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3
		RETURNING created_at, updated_at
	`, rest.Title, rest.Address, rest.ID).Scan(&rest.CreatedAt, &rest.UpdatedAt)
	return translateErr(err)
}

func (r *PostgresRepository) DeleteRestaurant(ctx context.Context, id int) (int64, error) {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *domain.User) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, daily_vote_count)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, user.Username, user.PasswordHash, user.DailyVoteCount).Scan(&user.ID, &user.CreatedAt)
	return translateErr(err)
}

func (r *PostgresRepository) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return r.scanUser(r.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, daily_vote_count, created_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *PostgresRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(r.DB.QueryRowContext(ctx, `
		SELECT id, username, password_hash, daily_vote_count, created_at
		FROM users
		WHERE username = $1
	`, username))
}

func (r *PostgresRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.DailyVoteCount, &user.CreatedAt); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *PostgresRepository) CountUserVotes(ctx context.Context, userID, restaurantID int, window domain.Window) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM votes
		WHERE user_id = $1 AND restaurant_id = $2
		  AND created_at >= $3 AND created_at < $4
	`, userID, restaurantID, window.Start, window.End).Scan(&count)
	return count, err
}

func (r *PostgresRepository) InsertVote(ctx context.Context, vote *domain.Vote) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO votes (user_id, restaurant_id, vote_weight)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, vote.UserID, vote.RestaurantID, vote.VoteWeight).Scan(&vote.ID, &vote.CreatedAt)
}

func (r *PostgresRepository) CountRestaurants(ctx context.Context, restaurantIDs []int) (int, error) {
	query := "SELECT COUNT(*) FROM restaurants"
	var args []interface{}
	if len(restaurantIDs) > 0 {
		query += " WHERE id = ANY($1)"
		args = append(args, pq.Array(restaurantIDs))
	}

	var count int
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

// ListCurrentStandings ranks by all-time votes; the per-user count only looks at today.
func (r *PostgresRepository) ListCurrentStandings(ctx context.Context, userID int, today domain.Window, page domain.Page) ([]domain.Standing, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT r.id, r.title, r.address,
		       COUNT(DISTINCT v.user_id) AS distinct_voted_users,
		       COALESCE(SUM(v.vote_weight), 0.0) AS rating,
		       COUNT(v.id) FILTER (
		           WHERE v.user_id = $1 AND v.created_at >= $2 AND v.created_at < $3
		       ) AS user_vote_count_today
		FROM restaurants r
		LEFT JOIN votes v ON v.restaurant_id = r.id
		GROUP BY r.id, r.title, r.address
		ORDER BY rating DESC, distinct_voted_users DESC, r.title ASC
		LIMIT $4 OFFSET $5
	`, userID, today.Start, today.End, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := []domain.Standing{}
	for rows.Next() {
		var st domain.Standing
		var todayCount int
		if err := rows.Scan(&st.ID, &st.Title, &st.Address, &st.DistinctVotedUsers, &st.Rating, &todayCount); err != nil {
			return nil, err
		}
		st.UserVoteCountToday = &todayCount
		standings = append(standings, st)
	}
	return standings, rows.Err()
}

// ListStandings aggregates the votes matching filter per restaurant. The vote
// conditions live in the join so restaurants without matching votes still
// appear with rating 0.
func (r *PostgresRepository) ListStandings(ctx context.Context, filter domain.VoteFilter, page domain.Page) ([]domain.Standing, error) {
	var args []interface{}
	joinConds := voteConditions(filter, &args)

	query := `
		SELECT r.id, r.title, r.address,
		       COUNT(DISTINCT v.user_id) AS distinct_voted_users,
		       COALESCE(SUM(v.vote_weight), 0.0) AS rating
		FROM restaurants r
		LEFT JOIN votes v ON v.restaurant_id = r.id` + joinConds
	if len(filter.RestaurantIDs) > 0 {
		args = append(args, pq.Array(filter.RestaurantIDs))
		query += "\n\t\tWHERE r.id = ANY(" + placeholder(len(args)) + ")"
	}
	args = append(args, page.Size, page.Offset())
	query += `
		GROUP BY r.id, r.title, r.address
		ORDER BY rating DESC, distinct_voted_users DESC, r.title ASC
		LIMIT ` + placeholder(len(args)-1) + ` OFFSET ` + placeholder(len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	standings := []domain.Standing{}
	for rows.Next() {
		var st domain.Standing
		if err := rows.Scan(&st.ID, &st.Title, &st.Address, &st.DistinctVotedUsers, &st.Rating); err != nil {
			return nil, err
		}
		standings = append(standings, st)
	}
	return standings, rows.Err()
}

// ListDayStandings groups matching votes by local calendar day and restaurant.
func (r *PostgresRepository) ListDayStandings(ctx context.Context, filter domain.VoteFilter, timeZone string) ([]domain.DayStanding, error) {
	args := []interface{}{timeZone}
	conds := voteConditions(filter, &args)
	if len(filter.RestaurantIDs) > 0 {
		args = append(args, pq.Array(filter.RestaurantIDs))
		conds += " AND v.restaurant_id = ANY(" + placeholder(len(args)) + ")"
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT to_char((v.created_at AT TIME ZONE $1)::date, 'YYYY-MM-DD') AS day,
		       r.id, r.title, r.address,
		       SUM(v.vote_weight) AS rating,
		       COUNT(DISTINCT v.user_id) AS total_distinct_users_voted
		FROM votes v
		JOIN restaurants r ON r.id = v.restaurant_id
		WHERE TRUE`+conds+`
		GROUP BY day, r.id, r.title, r.address
		ORDER BY day ASC, rating DESC, total_distinct_users_voted DESC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	groups := []domain.DayStanding{}
	for rows.Next() {
		var g domain.DayStanding
		if err := rows.Scan(&g.Date, &g.RestaurantID, &g.Title, &g.Address, &g.Rating, &g.TotalDistinctUsersVoted); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// voteConditions renders the time bounds of filter as "AND ..." clauses on v.
func voteConditions(filter domain.VoteFilter, args *[]interface{}) string {
	var b strings.Builder
	if filter.After != nil {
		*args = append(*args, *filter.After)
		b.WriteString(" AND v.created_at > " + placeholder(len(*args)))
	}
	if filter.Before != nil {
		*args = append(*args, *filter.Before)
		b.WriteString(" AND v.created_at <= " + placeholder(len(*args)))
	}
	return b.String()
}

func placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

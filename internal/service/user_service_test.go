package service

import (
	"context"
	"sync"
	"testing"

	"github.com/MasteriNeuron/ToDo-List-Project/internal/auth"
	dom "github.com/MasteriNeuron/ToDo-List-Project/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory UserRepo that mimics the users table,
// including its unique constraints.
type fakeUserRepo struct {
	mu        sync.Mutex
	seq       int64
	users     []dom.User
	createErr error
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return dom.User{}, pgx.ErrNoRows
}

func (r *fakeUserRepo) Create(_ context.Context, username, email, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return dom.User{}, r.createErr
	}
	for _, u := range r.users {
		if u.Username == username {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		}
		if u.Email == email {
			return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	r.seq++
	u := dom.User{ID: r.seq, Username: username, Email: email, PasswordHash: passwordHash}
	r.users = append(r.users, u)
	return u, nil
}

func newUserService(repo *fakeUserRepo) *UserService {
	return NewUserService(repo, auth.NewHasher())
}

func TestUserService_Register(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})

	u, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
	require.NoError(t, err)
	assert.NotZero(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "pw", u.PasswordHash)
}

func TestUserService_RegisterDuplicateUsername(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// First registration stays usable.
	_, err = svc.Authenticate(ctx, "alice", "pw")
	assert.NoError(t, err)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "bob", "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_RegisterDualConflictReportsUsername(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	// Both taken: username is checked first.
	_, err = svc.Register(ctx, "alice", "alice@example.com", "pw")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestUserService_RegisterRaceMapsUniqueViolation(t *testing.T) {
	// A concurrent duplicate can slip past the pre-checks and hit the DB
	// constraint; the violation maps to the same sentinel errors.
	tests := []struct {
		constraint string
		want       error
	}{
		{constraint: "users_username_key", want: ErrUsernameTaken},
		{constraint: "users_email_key", want: ErrEmailTaken},
	}
	for _, tt := range tests {
		t.Run(tt.constraint, func(t *testing.T) {
			repo := &fakeUserRepo{createErr: &pgconn.PgError{Code: "23505", ConstraintName: tt.constraint}}
			svc := newUserService(repo)

			_, err := svc.Register(context.Background(), "alice", "alice@example.com", "pw")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUserService_RegisterMissingFields(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})
	ctx := context.Background()

	for _, args := range [][3]string{
		{"", "a@example.com", "pw"},
		{"alice", "", "pw"},
		{"alice", "a@example.com", ""},
		{"   ", "a@example.com", "pw"},
	} {
		_, err := svc.Register(ctx, args[0], args[1], args[2])
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestUserService_AuthenticateDoesNotLeakWhichFailed(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	_, wrongPassword := svc.Authenticate(ctx, "alice", "nope")
	_, unknownUser := svc.Authenticate(ctx, "mallory", "pw")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestUserService_AuthenticateSuccess(t *testing.T) {
	svc := newUserService(&fakeUserRepo{})
	ctx := context.Background()

	created, err := svc.Register(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	got, err := svc.Authenticate(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

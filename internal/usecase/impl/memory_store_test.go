package impl

import (
	"context"
	"maps"
	"sync"
	"time"

	"accounts/internal/domain/entity"
	domainerrors "accounts/internal/domain/errors"
	"accounts/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// memState is one consistent view of the tables.
type memState struct {
	accounts map[uuid.UUID]entity.Account
	posts    map[uuid.UUID]entity.Post
}

func (s *memState) clone() *memState {
	return &memState{
		accounts: maps.Clone(s.accounts),
		posts:    maps.Clone(s.posts),
	}
}

// memStore is an in-memory stand-in for Postgres. Transactions work on a copy
// of the state that replaces the original only on commit, and the email check
// in Create plays the role of the unique index.
type memStore struct {
	mu             sync.Mutex
	state          *memState
	failPostDelete error
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		accounts: map[uuid.UUID]entity.Account{},
		posts:    map[uuid.UUID]entity.Post{},
	}}
}

func (s *memStore) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(&memFactory{store: s, state: work}); err != nil {
		return err
	}
	s.state = work

	return nil
}

// AccountRepo returns a repository outside any transaction.
func (s *memStore) AccountRepo() repository.AccountRepository {
	return &memAccountRepo{lock: &s.mu, state: func() *memState { return s.state }}
}

func (s *memStore) addPost(owner uuid.UUID, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.state.posts[id] = entity.Post{ID: id, OwnerID: owner, Title: title}
}

func (s *memStore) postCount(owner uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, p := range s.state.posts {
		if p.OwnerID == owner {
			n++
		}
	}

	return n
}

func (s *memStore) accountCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.state.accounts)
}

func (s *memStore) account(id uuid.UUID) (entity.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.state.accounts[id]

	return a, ok
}

type memFactory struct {
	store *memStore
	state *memState
}

func (f *memFactory) AccountRepo() repository.AccountRepository {
	return &memAccountRepo{state: func() *memState { return f.state }}
}

func (f *memFactory) PostRepo() repository.PostRepository {
	return &memPostRepo{state: f.state, fail: f.store.failPostDelete}
}

// memAccountRepo locks only when it runs outside a transaction.
type memAccountRepo struct {
	lock  *sync.Mutex
	state func() *memState
}

func (r *memAccountRepo) guard() func() {
	if r.lock == nil {
		return func() {}
	}
	r.lock.Lock()

	return r.lock.Unlock
}

func (r *memAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	defer r.guard()()

	a, ok := r.state().accounts[id]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return &a, nil
}

func (r *memAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	defer r.guard()()

	for _, a := range r.state().accounts {
		if a.Email == email {
			return &a, nil
		}
	}

	return nil, repository.ErrAccountNotFound
}

func (r *memAccountRepo) Create(_ context.Context, account *entity.Account) error {
	defer r.guard()()

	st := r.state()
	for _, a := range st.accounts {
		if a.Email == account.Email {
			return domainerrors.ErrEmailAlreadyUsed.WrapMessage("email already exists")
		}
	}

	account.ID = uuid.New()
	account.CreatedAt = time.Now()
	account.UpdatedAt = account.CreatedAt
	st.accounts[account.ID] = *account

	return nil
}

func (r *memAccountRepo) Update(_ context.Context, account *entity.Account) error {
	defer r.guard()()

	st := r.state()
	if _, ok := st.accounts[account.ID]; !ok {
		return repository.ErrAccountNotFound
	}
	for id, a := range st.accounts {
		if id != account.ID && a.Email == account.Email {
			return domainerrors.ErrEmailAlreadyUsed.WrapMessage("email already exists")
		}
	}

	account.UpdatedAt = time.Now()
	st.accounts[account.ID] = *account

	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, id uuid.UUID) error {
	defer r.guard()()

	st := r.state()
	if _, ok := st.accounts[id]; !ok {
		return repository.ErrAccountNotFound
	}
	for _, p := range st.posts {
		if p.OwnerID == id {
			return domainerrors.NewDatabaseExecuteError(errors.New("posts_owner_id_fkey"), "account still owns posts")
		}
	}
	delete(st.accounts, id)

	return nil
}

type memPostRepo struct {
	state *memState
	fail  error
}

func (r *memPostRepo) DeleteByOwnerID(_ context.Context, ownerID uuid.UUID) (int64, error) {
	if r.fail != nil {
		return 0, r.fail
	}

	var n int64
	for id, p := range r.state.posts {
		if p.OwnerID == ownerID {
			delete(r.state.posts, id)
			n++
		}
	}

	return n, nil
}

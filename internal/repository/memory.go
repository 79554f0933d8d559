package repository

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"QUORA_BACK-END/internal/models"
)

type memoryData struct {
	users     map[int64]models.User
	tokens    map[int64]models.UserAuthToken
	questions map[int64]models.Question
	answers   map[int64]models.Answer
	nextID    int64
}

func (d *memoryData) clone() *memoryData {
	return &memoryData{
		users:     maps.Clone(d.users),
		tokens:    maps.Clone(d.tokens),
		questions: maps.Clone(d.questions),
		answers:   maps.Clone(d.answers),
		nextID:    d.nextID,
	}
}

// MemoryStore is an in-process Store. Each call locks the data; WithTx
// serialises transactional units and restores a snapshot when fn fails.
type MemoryStore struct {
	mu   *sync.RWMutex
	txMu *sync.Mutex
	data *memoryData
	inTx bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		mu:   new(sync.RWMutex),
		txMu: new(sync.Mutex),
		data: &memoryData{
			users:     make(map[int64]models.User),
			tokens:    make(map[int64]models.UserAuthToken),
			questions: make(map[int64]models.Question),
			answers:   make(map[int64]models.Answer),
		},
	}
}

func (s *MemoryStore) Users() Users           { return memoryUsers{s} }
func (s *MemoryStore) AuthTokens() AuthTokens { return memoryTokens{s} }
func (s *MemoryStore) Questions() Questions   { return memoryQuestions{s} }
func (s *MemoryStore) Answers() Answers       { return memoryAnswers{s} }

func (s *MemoryStore) WithTx(ctx context.Context, fn func(tx Store) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.inTx {
		return fn(s)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	tx := &MemoryStore{mu: s.mu, txMu: s.txMu, data: s.data, inTx: true}
	if err := fn(tx); err != nil {
		s.mu.Lock()
		*s.data = *snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) Close() {}

func (s *MemoryStore) newID() int64 {
	s.data.nextID++
	return s.data.nextID
}

// --- users ---

type memoryUsers struct{ s *MemoryStore }

func (r memoryUsers) Create(ctx context.Context, u *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.users {
		if existing.UserName == u.UserName {
			return ErrDuplicateUser
		}
		if existing.Email == u.Email {
			return ErrDuplicateMail
		}
	}
	u.ID = r.s.newID()
	r.s.data.users[u.ID] = *u
	return nil
}

func (r memoryUsers) find(ctx context.Context, match func(models.User) bool) (*models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.data.users {
		if match(u) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryUsers) GetByUUID(ctx context.Context, uuid string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.UUID == uuid })
}

func (r memoryUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.ID == id })
}

func (r memoryUsers) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.UserName == username })
}

func (r memoryUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.Email == email })
}

func (r memoryUsers) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.data.users, id)

	for tid, t := range r.s.data.tokens {
		if t.UserID == id {
			delete(r.s.data.tokens, tid)
		}
	}
	for qid, q := range r.s.data.questions {
		if q.UserID == id {
			r.s.deleteQuestionLocked(qid)
		}
	}
	for aid, a := range r.s.data.answers {
		if a.UserID == id {
			delete(r.s.data.answers, aid)
		}
	}
	return nil
}

// --- auth tokens ---

type memoryTokens struct{ s *MemoryStore }

func (r memoryTokens) Create(ctx context.Context, t *models.UserAuthToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.ID = r.s.newID()
	r.s.data.tokens[t.ID] = *t
	return nil
}

func (r memoryTokens) GetByAccessToken(ctx context.Context, accessToken string) (*models.UserAuthToken, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, t := range r.s.data.tokens {
		if t.AccessToken == accessToken {
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryTokens) SetLogoutAt(ctx context.Context, id int64, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t, ok := r.s.data.tokens[id]
	if !ok {
		return ErrNotFound
	}
	t.LogoutAt = &at
	r.s.data.tokens[id] = t
	return nil
}

// --- questions ---

type memoryQuestions struct{ s *MemoryStore }

func (r memoryQuestions) Create(ctx context.Context, q *models.Question) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[q.UserID]; !ok {
		return ErrNotFound
	}
	q.ID = r.s.newID()
	r.s.data.questions[q.ID] = *q
	return nil
}

func (r memoryQuestions) GetByUUID(ctx context.Context, uuid string) (*models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, q := range r.s.data.questions {
		if q.UUID == uuid {
			return &q, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryQuestions) list(ctx context.Context, match func(models.Question) bool) ([]models.Question, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Question, 0)
	for _, q := range r.s.data.questions {
		if match(q) {
			out = append(out, q)
		}
	}
	slices.SortFunc(out, func(a, b models.Question) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r memoryQuestions) List(ctx context.Context) ([]models.Question, error) {
	return r.list(ctx, func(models.Question) bool { return true })
}

func (r memoryQuestions) ListByUser(ctx context.Context, userID int64) ([]models.Question, error) {
	return r.list(ctx, func(q models.Question) bool { return q.UserID == userID })
}

func (r memoryQuestions) UpdateContent(ctx context.Context, id int64, content string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	q, ok := r.s.data.questions[id]
	if !ok {
		return ErrNotFound
	}
	q.Content = content
	q.Date = at
	r.s.data.questions[id] = q
	return nil
}

func (r memoryQuestions) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.questions[id]; !ok {
		return ErrNotFound
	}
	r.s.deleteQuestionLocked(id)
	return nil
}

// deleteQuestionLocked removes a question and its answers. Caller holds mu.
func (s *MemoryStore) deleteQuestionLocked(id int64) {
	delete(s.data.questions, id)
	for aid, a := range s.data.answers {
		if a.QuestionID == id {
			delete(s.data.answers, aid)
		}
	}
}

// --- answers ---

type memoryAnswers struct{ s *MemoryStore }

func (r memoryAnswers) Create(ctx context.Context, a *models.Answer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[a.UserID]; !ok {
		return ErrNotFound
	}
	if _, ok := r.s.data.questions[a.QuestionID]; !ok {
		return ErrNotFound
	}
	a.ID = r.s.newID()
	r.s.data.answers[a.ID] = *a
	return nil
}

func (r memoryAnswers) GetByUUID(ctx context.Context, uuid string) (*models.Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, a := range r.s.data.answers {
		if a.UUID == uuid {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (r memoryAnswers) ListByQuestion(ctx context.Context, questionID int64) ([]models.Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Answer, 0)
	for _, a := range r.s.data.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b models.Answer) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (r memoryAnswers) UpdateContent(ctx context.Context, id int64, content string, at time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	a, ok := r.s.data.answers[id]
	if !ok {
		return ErrNotFound
	}
	a.Content = content
	a.Date = at
	r.s.data.answers[id] = a
	return nil
}

func (r memoryAnswers) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.answers[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.data.answers, id)
	return nil
}

package commands_test

import (
	"context"
	"sync"

	"loadboard/internal/core/application/usecases/commands"
	"loadboard/internal/core/domain/model/kernel"
	"loadboard/internal/core/domain/model/load"
	"loadboard/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

func (m *MockLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

func (m *MockLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLoadRepository) List(
	ctx context.Context,
	filter ports.LoadFilter,
	page ports.PageRequest,
) (ports.Page[*load.Load], error) {
	args := m.Called(ctx, filter, page)
	return args.Get(0).(ports.Page[*load.Load]), args.Error(1)
}

type MockLoadUoW struct{ mock.Mock }

func (m *MockLoadUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLoadUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

// recordingLocker runs fn directly and remembers which loads were locked.
type recordingLocker struct {
	mu     sync.Mutex
	locked []kernel.UUID
}

func (l *recordingLocker) WithLoadLock(ctx context.Context, loadID kernel.UUID, fn func(ctx context.Context) error) error {
	l.mu.Lock()
	l.locked = append(l.locked, loadID)
	l.mu.Unlock()
	return fn(ctx)
}

func (l *recordingLocker) Locked() []kernel.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]kernel.UUID(nil), l.locked...)
}

type spyRecorder struct {
	mu           sync.Mutex
	results      map[string][]error
	transitions  []string
	autoRejected int
}

func newSpyRecorder() *spyRecorder {
	return &spyRecorder{results: map[string][]error{}}
}

func (r *spyRecorder) CommandHandled(command string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[command] = append(r.results[command], err)
}

func (r *spyRecorder) LoadStatusChanged(from, to string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, from+"->"+to)
}

func (r *spyRecorder) BookingsAutoRejected(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.autoRejected += n
}

func (r *spyRecorder) Results(command string) []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.results[command]...)
}

func (r *spyRecorder) Transitions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.transitions...)
}

func (r *spyRecorder) AutoRejected() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.autoRejected
}

package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/models"
)

// KeyedMutex сериализует изменения одного инцидента внутри процесса.
// Между процессами порядок обеспечивает проверка версии в реестре.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyedEntry
}

// keyedEntry - семафор на один ключ; refs считает владельца и ожидающих
type keyedEntry struct {
	sem  chan struct{}
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[uuid.UUID]*keyedEntry)}
}

// Lock захватывает блокировку для id и возвращает функцию освобождения.
// Ожидание прерывается по ctx, тогда возвращается TransientIOError.
func (k *KeyedMutex) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	if k == nil {
		return func() {}, nil
	}

	k.mu.Lock()
	entry, ok := k.locks[id]
	if !ok {
		entry = &keyedEntry{sem: make(chan struct{}, 1)}
		k.locks[id] = entry
	}
	entry.refs++
	k.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		k.release(id, entry)
		return nil, models.AsTransient("incident.lock", ctx.Err())
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-entry.sem
			k.release(id, entry)
		})
	}, nil
}

func (k *KeyedMutex) release(id uuid.UUID, entry *keyedEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(k.locks, id)
	}
}

// size возвращает количество удерживаемых ключей
func (k *KeyedMutex) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	locks := NewKeyedMutex()
	id := uuid.New()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locks.Lock(context.Background(), id)
			if !assert.NoError(t, err) {
				return
			}
			defer unlock()

			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Equal(t, 0, locks.size())
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	locks := NewKeyedMutex()

	unlockA, err := locks.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB, err := locks.Lock(context.Background(), uuid.New())
		if err == nil {
			unlockB()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
	assert.Equal(t, 1, locks.size())
}

func TestKeyedMutex_WaitHonoursContext(t *testing.T) {
	// Подготовка
	locks := NewKeyedMutex()
	id := uuid.New()
	unlock, err := locks.Lock(context.Background(), id)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// Действие
	started := time.Now()
	second, err := locks.Lock(ctx, id)

	// Проверки
	var te *models.TransientIOError
	require.ErrorAs(t, err, &te)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Nil(t, second)
	assert.Less(t, time.Since(started), time.Second)

	// Отказавшийся ожидающий не удерживает ключ
	unlock()
	assert.Equal(t, 0, locks.size())

	third, err := locks.Lock(context.Background(), id)
	require.NoError(t, err)
	third()
}

func TestKeyedMutex_UnlockIsIdempotent(t *testing.T) {
	locks := NewKeyedMutex()
	id := uuid.New()

	unlock, err := locks.Lock(context.Background(), id)
	require.NoError(t, err)
	unlock()
	unlock()

	assert.Equal(t, 0, locks.size())
}

func TestKeyedMutex_NilIsNoop(t *testing.T) {
	var locks *KeyedMutex

	unlock, err := locks.Lock(context.Background(), uuid.New())
	require.NoError(t, err)
	unlock()
}

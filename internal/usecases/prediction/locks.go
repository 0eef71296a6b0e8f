package prediction

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// keyedLocks мьютексы по ключу (user, period). Проверка рейт-лимита и вставка
// записи — два шага; блокировка на весь интервал гарантирует не больше одной
// новой записи на окно даже при конкурентных вызовах. Контеншн только внутри
// одной пары — между пользователями и периодами блокировок нет.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (k *keyedLocks) lock(userID uuid.UUID, period domain.Period) func() {
	key := fmt.Sprintf("%s|%s", userID, period)

	k.mu.Lock()
	if k.locks == nil {
		k.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := k.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[key] = lock
	}
	k.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

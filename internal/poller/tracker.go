package poller

import (
	"github.com/google/uuid"
	"github.com/shenikar/tanod_dispatch/internal/models"
)

// ArrivalTracker хранит множество id из последнего удачного снимка.
// Первый вызов Observe только запоминает базу и ничего не возвращает.
// Не потокобезопасен: владелец сериализует вызовы сам.
type ArrivalTracker struct {
	seen   map[uuid.UUID]struct{}
	primed bool
}

func NewArrivalTracker() *ArrivalTracker {
	return &ArrivalTracker{}
}

// Observe сравнивает incidents с предыдущим снимком и возвращает новые в исходном порядке
func (t *ArrivalTracker) Observe(incidents []*models.Incident) []*models.Incident {
	next := make(map[uuid.UUID]struct{}, len(incidents))
	var arrived []*models.Incident
	for _, inc := range incidents {
		if inc == nil {
			continue
		}
		if _, dup := next[inc.ID]; dup {
			continue
		}
		next[inc.ID] = struct{}{}
		if !t.primed {
			continue
		}
		if _, ok := t.seen[inc.ID]; !ok {
			arrived = append(arrived, inc)
		}
	}
	t.seen = next
	t.primed = true
	return arrived
}

// Reset забывает базу; следующий Observe снова станет базовым
func (t *ArrivalTracker) Reset() {
	t.seen = nil
	t.primed = false
}

// Primed сообщает, установлена ли база
func (t *ArrivalTracker) Primed() bool {
	return t.primed
}

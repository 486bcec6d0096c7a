package state

import (
	"sync"
	"time"
)

// Manager хранит диалоги пользователей в памяти
type Manager struct {
	mu      sync.Mutex
	dialogs map[int64]Dialog // telegramID -> Dialog
	now     func() time.Time
}

// NewManager создаёт новый менеджер состояний
func NewManager() *Manager {
	return &Manager{
		dialogs: make(map[int64]Dialog),
		now:     time.Now,
	}
}

// Begin начинает диалог, заменяя предыдущий
func (m *Manager) Begin(telegramID int64, dialog Dialog) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dialog.StartedAt = m.now()
	m.dialogs[telegramID] = dialog
}

// Get возвращает активный диалог. Просроченный диалог удаляется.
func (m *Manager) Get(telegramID int64) (Dialog, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dialog, ok := m.dialogs[telegramID]
	if !ok {
		return Dialog{}, false
	}
	if m.now().Sub(dialog.StartedAt) > DialogTTL {
		delete(m.dialogs, telegramID)
		return Dialog{}, false
	}
	return dialog, true
}

// GetState возвращает состояние активного диалога или StateNone
func (m *Manager) GetState(telegramID int64) UserState {
	dialog, ok := m.Get(telegramID)
	if !ok {
		return StateNone
	}
	return dialog.State
}

// ClearState завершает диалог пользователя
func (m *Manager) ClearState(telegramID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.dialogs, telegramID)
}

package store

import (
	"sync"

	"hotel-inventory/models"
)

// Memory is a Store backed by two slices behind one RWMutex.
type Memory struct {
	mu        sync.RWMutex
	seq       uint64
	roomTypes []models.RoomType
	rooms     []models.Room
}

func NewMemory() *Memory {
	return &Memory{
		roomTypes: []models.RoomType{},
		rooms:     []models.Room{},
	}
}

func (m *Memory) AddRoomType(rt models.RoomType) (models.RoomType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	rt.Seq = m.seq
	m.roomTypes = append(m.roomTypes, rt)
	return rt, nil
}

func (m *Memory) RoomTypes() ([]models.RoomType, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.RoomType, len(m.roomTypes))
	copy(out, m.roomTypes)
	return out, nil
}

func (m *Memory) AddRoom(r models.Room) (models.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	r.Seq = m.seq
	m.rooms = append(m.rooms, r)
	return r, nil
}

func (m *Memory) Rooms() ([]models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Room, len(m.rooms))
	copy(out, m.rooms)
	return out, nil
}

func (m *Memory) FindRoom(id string) (models.Room, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i := m.indexOf(id)
	if i < 0 {
		return models.Room{}, ErrNotFound
	}
	return m.rooms[i], nil
}

func (m *Memory) UpdateRoom(id string, fn func(*models.Room)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r := m.rooms[i]
	fn(&r)
	r.ID, r.Seq = id, m.rooms[i].Seq
	m.rooms[i] = r
	return nil
}

func (m *Memory) DeleteRoom(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	m.rooms = append(m.rooms[:i], m.rooms[i+1:]...)
	return nil
}

// caller holds mu
func (m *Memory) indexOf(id string) int {
	for i := range m.rooms {
		if m.rooms[i].ID == id {
			return i
		}
	}
	return -1
}

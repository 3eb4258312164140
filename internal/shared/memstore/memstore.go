package memstore

import (
	"sync"

	"gorm.io/gorm"
)

// Table adalah tabel record in-memory dengan id integer yang naik monoton.
// Dipakai sebagai backend default pengganti database relasional; data hilang
// saat proses restart. gorm.ErrRecordNotFound dipakai sebagai sentinel "tidak
// ditemukan" yang sama dengan backend gorm, sehingga service tidak perlu tahu
// backend mana yang aktif.
type Table[T any] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	nextID uint
}

func NewTable[T any]() *Table[T] {
	return &Table[T]{
		rows:   make(map[uint]T),
		nextID: 1,
	}
}

// Insert memberikan id berikutnya ke build, menyimpan hasilnya, dan
// mengembalikan row yang tersimpan (termasuk id-nya).
func (t *Table[T]) Insert(build func(id uint) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++
	row := build(id)
	t.rows[id] = row
	return row
}

func (t *Table[T]) Get(id uint) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, gorm.ErrRecordNotFound
	}
	return row, nil
}

// Put menimpa row yang sudah ada; gagal jika id belum pernah dibuat.
func (t *Table[T]) Put(id uint, row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	t.rows[id] = row
	return nil
}

// Delete menghapus row; gagal jika id tidak pernah ada.
func (t *Table[T]) Delete(id uint) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(t.rows, id)
	return nil
}

// List mengembalikan snapshot semua row yang lolos filter keep (nil = semua).
// Urutan mengikuti iterasi map, tanpa jaminan.
func (t *Table[T]) List(keep func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// Find mengembalikan row pertama yang cocok dengan match.
func (t *Table[T]) Find(match func(T) bool) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if match(row) {
			return row, nil
		}
	}
	var zero T
	return zero, gorm.ErrRecordNotFound
}

func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v3"
)

// TTL время жизни сессии. Обновляется при каждой записи; после простоя
// пользователь молча возвращается в начальное состояние.
const TTL = 4 * time.Hour

// Store durable key-value хранилище сессий поверх badger.
// Ключ - telegram id пользователя, значение - JSON с Data.
type Store struct {
	db *badger.DB
}

// Open открывает (или создаёт) хранилище сессий по указанному пути
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close закрывает хранилище
func (s *Store) Close() error {
	return s.db.Close()
}

func sessionKey(telegramID int64) []byte {
	return []byte(fmt.Sprintf("session:%d", telegramID))
}

// Get возвращает сессию пользователя. Отсутствующая или истёкшая запись -
// не ошибка: возвращается свежая сессия.
func (s *Store) Get(telegramID int64) (*Data, error) {
	data := NewData()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(telegramID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, data)
		})
	})

	if errors.Is(err, badger.ErrKeyNotFound) {
		return NewData(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if data.TemplateStage == "" {
		data.TemplateStage = StageIdle
	}

	return data, nil
}

// Set сохраняет сессию пользователя, обновляя TTL
func (s *Store) Set(telegramID int64, data *Data) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(sessionKey(telegramID), payload).WithTTL(TTL)
		return txn.SetEntry(entry)
	})
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	return nil
}

// RunGC запускает один проход сборки мусора value log. Badger не
// чистит место за истёкшими сессиями сам, поэтому вызывается
// периодически из фоновой задачи. badger.ErrNoRewrite означает, что
// чистить было нечего.
func (s *Store) RunGC() error {
	return s.db.RunValueLogGC(0.5)
}

// Delete удаляет сессию пользователя
func (s *Store) Delete(telegramID int64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(telegramID))
	})
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

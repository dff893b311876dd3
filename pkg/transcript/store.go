// Package transcript records completed play turns to a bbolt file. Each
// process run gets its own session bucket; within a session, turns are
// keyed by number so they read back in play order. Transcripts hold play
// history only, never world state.
package transcript

import (
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"
)

// Turn is one completed request/response cycle.
type Turn struct {
	Number   int
	Actor    int
	Input    string
	Response string
}

// Store wraps a bbolt database holding one bucket per session.
type Store struct {
	bolt    *bbolt.DB
	session []byte
}

// Open opens or creates the transcript file and starts a new session
// bucket named by the current time.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("transcript: open %s: %w", path, err)
	}

	session := []byte(time.Now().Format(time.RFC3339Nano))
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(session)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("transcript: create session bucket: %w", err)
	}

	return &Store{bolt: db, session: session}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	if s.bolt != nil {
		return s.bolt.Close()
	}
	return nil
}

// Path returns the filesystem path of the underlying bbolt database.
func (s *Store) Path() string {
	if s.bolt != nil {
		return s.bolt.Path()
	}
	return ""
}

// Session returns the name of the session bucket this store appends to.
func (s *Store) Session() string {
	return string(s.session)
}

// Append persists one turn to the current session.
func (s *Store) Append(t Turn) error {
	data, err := encodeTurn(&t)
	if err != nil {
		return fmt.Errorf("transcript: encode turn %d: %w", t.Number, err)
	}
	return s.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.session).Put(intToKey(t.Number), data)
	})
}

// Turns reads back every recorded turn of the named session, in play
// order.
func (s *Store) Turns(session string) ([]Turn, error) {
	var turns []Turn
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(session))
		if b == nil {
			return fmt.Errorf("transcript: no such session %q", session)
		}
		return b.ForEach(func(_, v []byte) error {
			t, err := decodeTurn(v)
			if err != nil {
				return err
			}
			turns = append(turns, *t)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return turns, nil
}

// Sessions lists the recorded session names.
func (s *Store) Sessions() ([]string, error) {
	var names []string
	err := s.bolt.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, _ *bbolt.Bucket) error {
			names = append(names, string(name))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/models"
)

// openTestDB opens a file-backed SQLite database in a per-test temp
// directory and applies the embedded migrations, exercising the same path
// the server boots through.
func openTestDB(t *testing.T) *DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "copypasta-test.db")
	db, err := Open(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}

func createTestUser(t *testing.T, s *Store, username string) models.User {
	t.Helper()

	user, err := s.Users.CreateUser(context.Background(), username, "s3cret")
	require.NoError(t, err)
	return user
}

func TestIntegration_InsertAndGetCurrentRoundTrip(t *testing.T) {
	db := openTestDB(t)
	s := NewStore(db, logger.Nop())
	user := createTestUser(t, s, "alice")

	inserted, err := s.Clipboard.InsertEntry(context.Background(), user.UserID, models.ContentTypeText, "hi", "{}", "A", 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), inserted.Version)

	current, err := s.Clipboard.GetCurrent(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, inserted.EntryID, current.EntryID)
	assert.Equal(t, "hi", current.Content)
	assert.Equal(t, "A", current.ClientID)

	latest, err := s.Clipboard.GetLatestVersion(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), latest)
}

func TestIntegration_GetCurrentEmpty(t *testing.T) {
	db := openTestDB(t)
	s := NewStore(db, logger.Nop())
	user := createTestUser(t, s, "alice")

	_, err := s.Clipboard.GetCurrent(context.Background(), user.UserID)
	assert.ErrorIs(t, err, ErrEmpty)

	latest, err := s.Clipboard.GetLatestVersion(context.Background(), user.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)
}

// TestIntegration_VersionsMonotonicUnderConcurrency drives concurrent
// inserts for one user and checks the issued versions are exactly
// 1..N with no duplicates and no gaps.
func TestIntegration_VersionsMonotonicUnderConcurrency(t *testing.T) {
	db := openTestDB(t)
	s := NewStore(db, logger.Nop())
	user := createTestUser(t, s, "alice")

	const (
		workers          = 4
		insertsPerWorker = 10
	)

	versions := make(chan int64, workers*insertsPerWorker)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < insertsPerWorker; i++ {
				entry, err := s.Clipboard.InsertEntry(context.Background(), user.UserID, models.ContentTypeText,
					fmt.Sprintf("worker %d insert %d", w, i), "{}", "", 100)
				assert.NoError(t, err)
				versions <- entry.Version
			}
		}(w)
	}
	wg.Wait()
	close(versions)

	seen := make(map[int64]bool)
	for v := range versions {
		assert.False(t, seen[v], "version %d issued twice", v)
		seen[v] = true
	}
	require.Len(t, seen, workers*insertsPerWorker)
	for v := int64(1); v <= workers*insertsPerWorker; v++ {
		assert.True(t, seen[v], "version %d missing from the sequence", v)
	}
}

// TestIntegration_HistoryBound inserts past the history limit and checks
// eviction keeps exactly the newest entries.
func TestIntegration_HistoryBound(t *testing.T) {
	db := openTestDB(t)
	s := NewStore(db, logger.Nop())
	user := createTestUser(t, s, "alice")

	const history = 3
	for _, content := range []string{"a", "b", "c", "d", "e"} {
		_, err := s.Clipboard.InsertEntry(context.Background(), user.UserID, models.ContentTypeText, content, "{}", "", history)
		require.NoError(t, err)
	}

	entries, err := s.Clipboard.GetHistory(context.Background(), user.UserID, 10)
	require.NoError(t, err)
	require.Len(t, entries, history)

	assert.Equal(t, "e", entries[0].Content)
	assert.Equal(t, int64(5), entries[0].Version)
	assert.Equal(t, "d", entries[1].Content)
	assert.Equal(t, int64(4), entries[1].Version)
	assert.Equal(t, "c", entries[2].Content)
	assert.Equal(t, int64(3), entries[2].Version)
}

// TestIntegration_CrossUserVersionsIndependent checks one user's inserts
// never advance another user's counter.
func TestIntegration_CrossUserVersionsIndependent(t *testing.T) {
	db := openTestDB(t)
	s := NewStore(db, logger.Nop())
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	for i := 0; i < 3; i++ {
		_, err := s.Clipboard.InsertEntry(context.Background(), alice.UserID, models.ContentTypeText, "alice paste", "{}", "", 50)
		require.NoError(t, err)
	}

	entry, err := s.Clipboard.InsertEntry(context.Background(), bob.UserID, models.ContentTypeText, "bob paste", "{}", "", 50)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.Version)

	latest, err := s.Clipboard.GetLatestVersion(context.Background(), alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), latest)
}

// TestIntegration_ConcurrentRegistrationUniqueness races two
// registrations of the same username; exactly one must win.
func TestIntegration_ConcurrentRegistrationUniqueness(t *testing.T) {
	db := openTestDB(t)
	s := NewStore(db, logger.Nop())

	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Users.CreateUser(context.Background(), "alice", "s3cret")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var wins, taken int
	for err := range errs {
		switch {
		case err == nil:
			wins++
		case assert.ErrorIs(t, err, ErrUsernameTaken):
			taken++
		}
	}
	assert.Equal(t, 1, wins, "exactly one registration must win")
	assert.Equal(t, 1, taken, "the loser must observe ErrUsernameTaken")
}

// TestIntegration_VerifyCredentialsRoundTrip checks the full hash/verify
// cycle against the real database.
func TestIntegration_VerifyCredentialsRoundTrip(t *testing.T) {
	db := openTestDB(t)
	s := NewStore(db, logger.Nop())
	createTestUser(t, s, "alice")

	user, err := s.Users.VerifyCredentials(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = s.Users.VerifyCredentials(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, ErrAuthFailed)

	_, err = s.Users.VerifyCredentials(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrAuthFailed)
}

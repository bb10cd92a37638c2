package adapter

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Carthago1/chat-backend/internal/infrastructure/database"
	repository "github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/port"
)

// Integration tests run against a real database. Set TEST_DB_URL to a
// Postgres DSN with the schema applied; otherwise they are skipped.
func testRepo(t *testing.T) *PgChatRepository {
	t.Helper()
	dsn := os.Getenv("TEST_DB_URL")
	if dsn == "" {
		t.Skip("TEST_DB_URL not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	pool, err := database.Connect(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewPgChatRepository(pool)
}

func createTestUser(t *testing.T, repo *PgChatRepository) int64 {
	t.Helper()
	username := fmt.Sprintf("it_%s", uuid.NewString()[:8])
	var id int64
	err := repo.pool.QueryRow(context.Background(),
		"INSERT INTO users (username, password_hash) VALUES ($1, 'x') RETURNING id",
		username,
	).Scan(&id)
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.pool.Exec(context.Background(), "DELETE FROM users WHERE id = $1", id)
	})
	return id
}

func TestPgCreateConversationAndSummary(t *testing.T) {
	req := require.New(t)
	repo := testRepo(t)
	ctx := context.Background()

	alice := createTestUser(t, repo)
	bob := createTestUser(t, repo)

	convID, err := repo.CreateConversation(ctx, alice, bob)
	req.NoError(err)
	req.Positive(convID)

	// Each party sees the other as the counterpart.
	summary, err := repo.GetConversation(ctx, alice, convID)
	req.NoError(err)
	req.Equal(convID, summary.ID)
	req.Equal(bob, summary.OtherUserID)

	summary, err = repo.GetConversation(ctx, bob, convID)
	req.NoError(err)
	req.Equal(alice, summary.OtherUserID)

	// A stranger sees nothing.
	carol := createTestUser(t, repo)
	_, err = repo.GetConversation(ctx, carol, convID)
	req.ErrorIs(err, repository.ErrNotFound)
}

func TestPgCreateConversationRollsBackOnFailure(t *testing.T) {
	req := require.New(t)
	repo := testRepo(t)
	ctx := context.Background()

	alice := createTestUser(t, repo)

	before, err := repo.ListConversationsForUser(ctx, alice)
	req.NoError(err)

	// The second membership insert violates the primary key, so the
	// conversation row from the first statement must be rolled back too.
	_, err = repo.CreateConversation(ctx, alice, alice)
	req.Error(err)

	after, err := repo.ListConversationsForUser(ctx, alice)
	req.NoError(err)
	req.Len(after, len(before))
}

func TestPgMessagesOrderedAndPaged(t *testing.T) {
	req := require.New(t)
	repo := testRepo(t)
	ctx := context.Background()

	alice := createTestUser(t, repo)
	bob := createTestUser(t, repo)
	convID, err := repo.CreateConversation(ctx, alice, bob)
	req.NoError(err)

	contents := []string{"first", "second", "third"}
	for _, c := range contents {
		_, err := repo.AppendMessage(ctx, convID, alice, c)
		req.NoError(err)
	}

	msgs, err := repo.ListMessages(ctx, convID, 0, 0)
	req.NoError(err)
	req.Len(msgs, 3)
	for i, m := range msgs {
		req.Equal(contents[i], m.Content)
		req.Equal(alice, m.SenderID)
		req.NotEmpty(m.SenderName)
		req.False(m.SentAt.IsZero())
	}

	page, err := repo.ListMessages(ctx, convID, 1, 1)
	req.NoError(err)
	req.Len(page, 1)
	req.Equal("second", page[0].Content)
}

func TestPgListMessagesReturnsFullHistoryWithoutLimit(t *testing.T) {
	req := require.New(t)
	repo := testRepo(t)
	ctx := context.Background()

	alice := createTestUser(t, repo)
	bob := createTestUser(t, repo)
	convID, err := repo.CreateConversation(ctx, alice, bob)
	req.NoError(err)

	const total = 60
	for i := 0; i < total; i++ {
		_, err := repo.AppendMessage(ctx, convID, alice, fmt.Sprintf("msg %03d", i))
		req.NoError(err)
	}

	// No limit means no silent cap: every message comes back, oldest first.
	msgs, err := repo.ListMessages(ctx, convID, 0, 0)
	req.NoError(err)
	req.Len(msgs, total)
	req.Equal("msg 000", msgs[0].Content)
	req.Equal(fmt.Sprintf("msg %03d", total-1), msgs[total-1].Content)
}

func TestPgMembershipQueries(t *testing.T) {
	req := require.New(t)
	repo := testRepo(t)
	ctx := context.Background()

	alice := createTestUser(t, repo)
	bob := createTestUser(t, repo)
	carol := createTestUser(t, repo)
	convID, err := repo.CreateConversation(ctx, alice, bob)
	req.NoError(err)

	ok, err := repo.IsMember(ctx, convID, alice)
	req.NoError(err)
	req.True(ok)

	ok, err = repo.IsMember(ctx, convID, carol)
	req.NoError(err)
	req.False(ok)

	others, err := repo.ListOtherMembers(ctx, convID, alice)
	req.NoError(err)
	req.Equal([]int64{bob}, others)
}

func TestPgGetMessageNotFound(t *testing.T) {
	repo := testRepo(t)
	_, err := repo.GetMessage(context.Background(), -1)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

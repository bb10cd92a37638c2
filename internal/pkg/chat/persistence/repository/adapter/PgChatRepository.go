package adapter

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
	repository "github.com/Carthago1/chat-backend/internal/pkg/chat/persistence/repository/port"
)

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

// Ensure interface compliance at compile time
var _ repository.ChatRepository = (*PgChatRepository)(nil)

// CreateConversation allocates the conversation row and both membership rows
// inside one transaction. A failure at any step rolls everything back, so
// readers never observe a conversation with fewer than two members.
func (r *PgChatRepository) CreateConversation(ctx context.Context, userA, userB int64) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgChatRepository: nil pool")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var id int64
	if err := tx.QueryRow(ctx,
		"INSERT INTO conversations (name) VALUES (NULL) RETURNING id",
	).Scan(&id); err != nil {
		return 0, err
	}

	for _, userID := range []int64{userA, userB} {
		if _, err := tx.Exec(ctx,
			"INSERT INTO memberships (conversation_id, user_id) VALUES ($1, $2)",
			id, userID,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

const conversationSummaryQuery = `
	SELECT c.id, c.name, m1.joined_at, m2.user_id, u2.username, m2.joined_at
	FROM conversations c
	JOIN memberships m1 ON m1.conversation_id = c.id AND m1.user_id = $1
	JOIN memberships m2 ON m2.conversation_id = c.id AND m2.user_id <> $1
	JOIN users u2 ON u2.id = m2.user_id
`

func (r *PgChatRepository) ListConversationsForUser(ctx context.Context, userID int64) ([]chat.ConversationSummary, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx,
		conversationSummaryQuery+" ORDER BY m1.joined_at DESC, c.id DESC",
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []chat.ConversationSummary
	for rows.Next() {
		var s chat.ConversationSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.JoinedAt, &s.OtherUserID, &s.OtherUsername, &s.OtherJoinedAt); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return summaries, nil
}

func (r *PgChatRepository) GetConversation(ctx context.Context, userID, conversationID int64) (chat.ConversationSummary, error) {
	if r == nil || r.pool == nil {
		return chat.ConversationSummary{}, errors.New("PgChatRepository: nil pool")
	}
	var s chat.ConversationSummary
	err := r.pool.QueryRow(ctx,
		conversationSummaryQuery+" WHERE c.id = $2",
		userID, conversationID,
	).Scan(&s.ID, &s.Name, &s.JoinedAt, &s.OtherUserID, &s.OtherUsername, &s.OtherJoinedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return chat.ConversationSummary{}, repository.ErrNotFound
	}
	if err != nil {
		return chat.ConversationSummary{}, err
	}
	return s, nil
}

// AppendMessage relies on the database default for sent_at so the timestamp
// is assigned at insert time in insertion order.
func (r *PgChatRepository) AppendMessage(ctx context.Context, conversationID, senderID int64, content string) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, errors.New("PgChatRepository: nil pool")
	}
	var id int64
	err := r.pool.QueryRow(ctx,
		"INSERT INTO messages (conversation_id, sender_id, content) VALUES ($1, $2, $3) RETURNING id",
		conversationID, senderID, content,
	).Scan(&id)
	return id, err
}

const messageQuery = `
	SELECT m.id, m.conversation_id, m.sender_id, u.username, m.content, m.sent_at
	FROM messages m
	JOIN users u ON u.id = m.sender_id
`

func (r *PgChatRepository) GetMessage(ctx context.Context, messageID int64) (chat.Message, error) {
	if r == nil || r.pool == nil {
		return chat.Message{}, errors.New("PgChatRepository: nil pool")
	}
	var m chat.Message
	err := r.pool.QueryRow(ctx,
		messageQuery+" WHERE m.id = $1",
		messageID,
	).Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName, &m.Content, &m.SentAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return chat.Message{}, repository.ErrNotFound
	}
	if err != nil {
		return chat.Message{}, err
	}
	return m, nil
}

func (r *PgChatRepository) ListMessages(ctx context.Context, conversationID int64, limit, offset int) ([]chat.Message, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	// A non-positive limit means the full history; pagination is opt-in.
	query := messageQuery + ` WHERE m.conversation_id = $1
		ORDER BY m.sent_at ASC, m.id ASC`
	args := []any{conversationID}
	if limit > 0 {
		query += " LIMIT $2 OFFSET $3"
		if offset < 0 {
			offset = 0
		}
		args = append(args, limit, offset)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []chat.Message
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.SenderName, &m.Content, &m.SentAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return msgs, nil
}

func (r *PgChatRepository) ListOtherMembers(ctx context.Context, conversationID, excludingUserID int64) ([]int64, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgChatRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx,
		"SELECT user_id FROM memberships WHERE conversation_id = $1 AND user_id <> $2",
		conversationID, excludingUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return ids, nil
}

func (r *PgChatRepository) IsMember(ctx context.Context, conversationID, userID int64) (bool, error) {
	if r == nil || r.pool == nil {
		return false, errors.New("PgChatRepository: nil pool")
	}
	var exists bool
	err := r.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM memberships WHERE conversation_id = $1 AND user_id = $2)",
		conversationID, userID,
	).Scan(&exists)
	return exists, err
}

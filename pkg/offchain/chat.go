package offchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mygive/platform-core/pkg/models"
)

// chatThreadKey scopes a conversation to one claim on one resource.
func chatThreadKey(resourceId int64, claimId string) string {
	return fmt.Sprintf("%d_%s", resourceId, claimId)
}

// AppendChatMessage adds a message to the thread between a resource
// owner and a claimer. The whole thread is stored as one document, so
// the append is a read-modify-write on the thread key.
func (s *Store) AppendChatMessage(ctx context.Context, resourceId int64, claimId, sender, message string) (*models.ChatMessage, error) {
	if message == "" {
		return nil, fmt.Errorf("chat message is required")
	}

	thread, err := s.ChatMessages(ctx, resourceId, claimId)
	if err != nil {
		return nil, err
	}

	entry := models.ChatMessage{
		Id:         uuid.New().String(),
		ResourceId: resourceId,
		ClaimId:    claimId,
		Sender:     NormalizeKey(sender),
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
	thread = append(thread, entry)

	value, err := json.Marshal(thread)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat thread: %w", err)
	}
	if err := s.Put(ctx, CollectionChat, chatThreadKey(resourceId, claimId), value); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ChatMessages retrieves a thread ordered oldest-first. An empty thread
// yields an empty slice, never an error.
func (s *Store) ChatMessages(ctx context.Context, resourceId int64, claimId string) ([]models.ChatMessage, error) {
	value, err := s.Get(ctx, CollectionChat, chatThreadKey(resourceId, claimId))
	if errors.Is(err, ErrNotFound) {
		return []models.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}

	var thread []models.ChatMessage
	if err := json.Unmarshal(value, &thread); err != nil {
		return nil, fmt.Errorf("failed to decode chat thread: %w", err)
	}
	sort.SliceStable(thread, func(i, j int) bool {
		return thread[i].CreatedAt.Before(thread[j].CreatedAt)
	})
	return thread, nil
}

package queries

import (
	"encoding/json"

	uuid "github.com/satori/go.uuid"

	"github.com/maxwharris/monop/app/models"
)

// LogAction appends an audit record. Failures here are reported but
// never block the action that triggered them.
func (s *Store) LogAction(playerId *string, actionType string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	action := &models.GameAction{
		PlayerId:   playerId,
		ActionType: actionType,
		ActionData: string(payload),
		Timestamp:  now(),
	}
	_, err = s.DB.Model(action).Insert()
	return err
}

// GetChatMessages returns the most recent limit messages in
// chronological order.
func (s *Store) GetChatMessages(limit int) ([]*models.ChatMessage, error) {
	var messages []*models.ChatMessage
	err := s.DB.Model(&messages).Order("timestamp DESC").Limit(limit).Select()
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (s *Store) CreateChatMessage(userId, username, message string) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		Id:        uuid.NewV4().String(),
		UserId:    userId,
		Username:  username,
		Message:   message,
		Timestamp: now(),
	}
	if _, err := s.DB.Model(msg).Insert(); err != nil {
		return nil, err
	}
	return msg, nil
}

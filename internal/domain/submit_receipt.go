package domain

import "time"

// SubmitReceipt records the result of a previously processed submit, keyed by
// (conversation_id, key). It enables safe retries of the non-idempotent
// message submission: a retry with the same Idempotency-Key returns the
// originally produced assistant message instead of calling the model again.
type SubmitReceipt struct {
	ID             string    `gorm:"type:TEXT NOT NULL;primaryKey"`
	ConversationID string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_conv_key,priority:1"`
	Key            string    `gorm:"type:TEXT NOT NULL;uniqueIndex:ux_conv_key,priority:2"`
	MessageID      string    `gorm:"type:TEXT NOT NULL"`
	Status         int       `gorm:"type:INTEGER NOT NULL"`
	CreatedAt      time.Time `gorm:"type:DATETIME NOT NULL;autoCreateTime"`
	ExpiresAt      time.Time `gorm:"type:DATETIME NOT NULL;index"`
}

// TableName implements the GORM tabler interface.
func (SubmitReceipt) TableName() string { return "submit_receipts" }

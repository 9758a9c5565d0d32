// Package domain defines the persistence models for conversations, messages,
// and contact submissions. These types are mapped with GORM and form the core
// data layer of the assistant application.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Conversation represents one continuous chat session. Its ID is the
// partition key for persisted messages: exactly one conversation is active
// per client session, and clearing a conversation creates a new distinct ID.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Title: human-readable title (auto-generated from the first prompt).
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
//   - DeletedAt: soft deletion marker (a cleared conversation keeps its rows
//     for audit until the bulk delete runs).
type Conversation struct {
	ID        string         `json:"id"    gorm:"type:char(36);primaryKey"`
	Title     string         `json:"title" gorm:"type:varchar(255);not null;default:'New conversation'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"     gorm:"index"`
}

// TableName returns the database table name for Conversation.
func (Conversation) TableName() string { return "conversations" }

// Message represents a single utterance within a conversation, authored
// either by the "user" or the "assistant". A message is immutable after
// creation except for its reaction fields (Likes, Dislikes, UserAction),
// which the reaction ledger updates. Messages are never deleted
// individually; they are bulk-cleared with their conversation.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - ConversationID: foreign key to the owning conversation (indexed).
//   - Role: "user" or "assistant" (enforced by DB constraint).
//   - Content: full text content of the message.
//   - Context: snapshot of the running history string at creation time.
//   - Likes / Dislikes: non-negative reaction counters.
//   - UserAction: the submitting user's current toggle state.
//   - CreatedAt: creation timestamp; with ConversationID it addresses the
//     row for reaction updates.
type Message struct {
	ID             string         `json:"id"              gorm:"type:char(36);primaryKey"`
	ConversationID string         `json:"conversation_id" gorm:"type:char(36);not null;index:idx_conv_msgs,priority:1"`
	Role           string         `json:"role"            gorm:"type:varchar(16);not null;check:role IN ('user','assistant')"`
	Content        string         `json:"content"         gorm:"type:text;not null"`
	Context        string         `json:"context,omitempty" gorm:"type:text"`
	Likes          int            `json:"likes"           gorm:"not null;default:0;check:likes >= 0"`
	Dislikes       int            `json:"dislikes"        gorm:"not null;default:0;check:dislikes >= 0"`
	UserAction     Reaction       `json:"user_action"     gorm:"type:varchar(16);not null;default:'none'"`
	CreatedAt      time.Time      `json:"created_at"      gorm:"index:idx_conv_msgs,priority:2"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-"               gorm:"index"`

	// Conversation is the parent session. Messages are cascade-deleted
	// if their conversation is removed.
	Conversation Conversation `json:"-" gorm:"foreignKey:ConversationID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Message.
func (Message) TableName() string { return "messages" }

// ContactMessage represents a contact-form submission. It lives outside the
// conversation flow and is insert-only.
type ContactMessage struct {
	ID        string         `json:"id"      gorm:"type:char(36);primaryKey"`
	Name      string         `json:"name"    gorm:"type:varchar(120);not null"`
	Email     string         `json:"email"   gorm:"type:varchar(254);not null"`
	Message   string         `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"       gorm:"index"`
}

// TableName returns the database table name for ContactMessage.
func (ContactMessage) TableName() string { return "contact_messages" }

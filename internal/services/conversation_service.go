// Package services: ConversationService
//
// This file implements ConversationService, the application-level component
// that drives a conversation turn: validate the prompt, consult the response
// cache, build the model prompt from recent context, race the model call
// against a timeout, format and record the reply. Submits for one
// conversation are strictly serialized; a second submit while one is in
// flight is rejected rather than interleaved.
//
// Persistence is best-effort throughout: database failures are logged and
// swallowed, never surfaced to the caller and never able to block the
// in-memory turn.
//
// Observability: public methods are OpenTelemetry-instrumented; spans carry
// conversation identifiers and pagination parameters where applicable.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/mkaravas/go-assistant-backend/internal/analysis"
	"github.com/mkaravas/go-assistant-backend/internal/cache"
	"github.com/mkaravas/go-assistant-backend/internal/domain"
	"github.com/mkaravas/go-assistant-backend/internal/llm"
	"github.com/mkaravas/go-assistant-backend/internal/prompt"
	"github.com/mkaravas/go-assistant-backend/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	roleUser      = "user"
	roleAssistant = "assistant"

	// default title considered a placeholder and eligible for auto-generation
	defaultTitleNew = "New conversation"
)

// User-facing fallback texts for failed model calls. The turn still
// produces a normal assistant message containing one of these.
const (
	fallbackTimeout = "The response took too long to generate. Please try again."
	fallbackAPIKey  = "The assistant is not configured correctly. Please check the API key settings."
	fallbackNetwork = "A network problem interrupted the request. Please check your connection and try again."
	fallbackGeneric = "Sorry, something went wrong while generating a response. Please try again."
)

// conversationState is the in-memory side of one conversation: the bounded
// question/answer history the prompt is built from, the raw texts the
// summarizer windows over, and the conversation's own response cache.
// Persisted messages are the durable record; this state exists so a turn
// never has to read the database to build a prompt. Clear discards the whole
// struct, cache included, so replies can never leak into the replacement
// conversation or across conversations.
type conversationState struct {
	pairs  []qaPair
	recent []string
	cache  *cache.ResponseCache
}

type qaPair struct {
	query    string
	response string
}

// ConversationService coordinates conversation turns and lifecycle.
type ConversationService struct {
	DB        *gorm.DB
	Generator llm.Generator
	Log       zerolog.Logger

	// CacheTTL is the lifetime of entries in each conversation's response
	// cache. Nonpositive values fall back to cache.DefaultTTL.
	CacheTTL time.Duration
	// GenTimeout bounds how long a turn waits for the model.
	GenTimeout time.Duration
	// ContextWindow is how many recent messages the summarizer reads.
	ContextWindow int
	// HistoryMaxPairs bounds the in-memory Q/A history per conversation.
	HistoryMaxPairs int
	// MaxPromptRunes caps accepted prompts by rune length. Zero disables.
	MaxPromptRunes int

	// Title generation config
	TitleLocale language.Tag
	TitleMaxLen int

	mu       sync.Mutex
	inFlight map[string]bool
	states   map[string]*conversationState
}

// NewConversationService constructs a ConversationService with defaults
// matching the configuration package.
func NewConversationService(db *gorm.DB, gen llm.Generator, cacheTTL time.Duration, log zerolog.Logger) *ConversationService {
	return &ConversationService{
		DB:              db,
		Generator:       gen,
		Log:             log,
		CacheTTL:        cacheTTL,
		GenTimeout:      30 * time.Second,
		ContextWindow:   analysis.DefaultWindow,
		HistoryMaxPairs: 10,
		MaxPromptRunes:  2000,
		TitleLocale:     language.Und,
		TitleMaxLen:     60,
		inFlight:        make(map[string]bool),
		states:          make(map[string]*conversationState),
	}
}

// StartConversation creates a new conversation. A blank title gets the
// placeholder, which is later replaced from the first prompt.
func (s *ConversationService) StartConversation(ctx context.Context, title string) (*domain.Conversation, error) {
	tr := otel.Tracer("services/ConversationService")
	ctx, span := tr.Start(ctx, "StartConversation")
	defer span.End()

	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		title = defaultTitleNew
	}
	return repo.CreateConversation(ctx, s.DB, s.clipTitle(title))
}

// Submit runs one conversation turn and returns the assistant message.
// Model failures never escape: they are converted into a fallback reply
// recorded like any other assistant message. The only errors returned are
// validation ones (ErrEmptyPrompt, ErrTooLong, ErrConversationNotFound,
// ErrConversationBusy) and they leave the conversation unchanged.
func (s *ConversationService) Submit(ctx context.Context, conversationID, text string) (*domain.Message, error) {
	tr := otel.Tracer("services/ConversationService")
	ctx, span := tr.Start(ctx, "Submit",
		trace.WithAttributes(attribute.String("conversation.id", conversationID)),
	)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyPrompt
	}
	if s.MaxPromptRunes > 0 && utf8.RuneCountInString(text) > s.MaxPromptRunes {
		return nil, ErrTooLong
	}

	conv, err := repo.GetConversation(ctx, s.DB, conversationID)
	if err != nil {
		return nil, ErrConversationNotFound
	}

	if !s.acquire(conversationID) {
		return nil, ErrConversationBusy
	}
	defer s.release(conversationID)

	st := s.state(conversationID)

	// Snapshot the accumulated history before this turn mutates it; both
	// rows of the turn carry the same snapshot.
	snap := st.render()

	// Record the user message before anything can fail.
	st.recent = appendBounded(st.recent, text, 2*s.HistoryMaxPairs)
	s.persistMessage(ctx, conversationID, roleUser, text, snap)

	summary := analysis.Summarize(st.recent, s.ContextWindow)

	reply, cached := st.cache.Get(text)
	span.SetAttributes(attribute.Bool("cache.hit", cached))
	generated := cached
	if !cached {
		reply, generated = s.generate(ctx, st, summary, text)
	}

	msg := s.settle(ctx, conversationID, st, text, reply, snap, generated)
	s.autoTitle(ctx, conversationID, conv.Title, text)
	return msg, nil
}

// generate builds the prompt and races the model call against GenTimeout.
// Exactly one of {result, timeout} decides the turn; a late result is
// discarded. The returned text is always user-facing, either the formatted
// model output or a classified fallback; ok reports which, so the caller can
// keep failed turns out of the Q/A history.
func (s *ConversationService) generate(ctx context.Context, st *conversationState, summary, text string) (reply string, ok bool) {
	var lastQ, lastA string
	if n := len(st.pairs); n > 0 {
		lastQ = st.pairs[n-1].query
		lastA = st.pairs[n-1].response
	}
	p := prompt.Build(st.render(), lastQ, lastA, summary, text)

	type result struct {
		text string
		err  error
	}
	// Buffered so a losing goroutine can deliver and exit.
	ch := make(chan result, 1)
	go func() {
		out, err := s.Generator.Generate(ctx, p)
		ch <- result{out, err}
	}()

	timer := time.NewTimer(s.GenTimeout)
	defer timer.Stop()

	var r result
	select {
	case r = <-ch:
	case <-timer.C:
		r = result{err: context.DeadlineExceeded}
	}

	if r.err != nil {
		s.Log.Warn().Err(r.err).Msg("model call failed")
		return fallbackFor(r.err), false
	}

	out := FormatResponse(r.text)
	st.cache.Put(text, out)
	return out, true
}

// settle records the assistant message and persists it. The Q/A history the
// next prompt is built from advances only on a successful reply; a fallback
// is recorded as a message but never becomes "previous answer" context.
func (s *ConversationService) settle(ctx context.Context, conversationID string, st *conversationState, query, reply, snap string, generated bool) *domain.Message {
	st.recent = appendBounded(st.recent, reply, 2*s.HistoryMaxPairs)
	if generated {
		st.pairs = append(st.pairs, qaPair{query: query, response: reply})
		if s.HistoryMaxPairs > 0 && len(st.pairs) > s.HistoryMaxPairs {
			st.pairs = st.pairs[len(st.pairs)-s.HistoryMaxPairs:]
		}
	}

	if m := s.persistMessage(ctx, conversationID, roleAssistant, reply, snap); m != nil {
		return m
	}
	// Persistence failed; hand back an unpersisted message so the caller
	// still sees the reply.
	return &domain.Message{
		ConversationID: conversationID,
		Role:           roleAssistant,
		Content:        reply,
		UserAction:     domain.ReactionNone,
		CreatedAt:      time.Now().UTC(),
	}
}

// IsLoading reports whether a submit is currently being processed for the
// conversation.
func (s *ConversationService) IsLoading(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight[conversationID]
}

// Clear removes all trace of a conversation and returns a fresh one with a
// new distinct ID. Message deletion is best-effort; the in-memory state,
// response cache included, is always discarded.
func (s *ConversationService) Clear(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	tr := otel.Tracer("services/ConversationService")
	ctx, span := tr.Start(ctx, "Clear",
		trace.WithAttributes(attribute.String("conversation.id", conversationID)),
	)
	defer span.End()

	if _, err := repo.GetConversation(ctx, s.DB, conversationID); err != nil {
		return nil, ErrConversationNotFound
	}
	if !s.acquire(conversationID) {
		return nil, ErrConversationBusy
	}
	defer s.release(conversationID)

	if err := repo.DeleteMessages(ctx, s.DB, conversationID); err != nil {
		s.Log.Warn().Err(err).Str("conversation_id", conversationID).Msg("clear: delete messages failed")
	}
	if err := repo.DeleteConversation(ctx, s.DB, conversationID); err != nil {
		s.Log.Warn().Err(err).Str("conversation_id", conversationID).Msg("clear: delete conversation failed")
	}

	s.mu.Lock()
	delete(s.states, conversationID)
	s.mu.Unlock()

	return repo.CreateConversation(ctx, s.DB, defaultTitleNew)
}

// ListPage returns paginated persisted messages for a conversation.
func (s *ConversationService) ListPage(ctx context.Context, conversationID string, page, pageSize int) ([]domain.Message, int64, error) {
	tr := otel.Tracer("services/ConversationService")
	ctx, span := tr.Start(ctx, "ListPage",
		trace.WithAttributes(
			attribute.String("conversation.id", conversationID),
			attribute.Int("page", page),
			attribute.Int("page_size", pageSize),
		),
	)
	defer span.End()

	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	if _, err := repo.GetConversation(ctx, s.DB, conversationID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, 0, ErrConversationNotFound
		}
		return nil, 0, err
	}

	total, err := repo.CountMessages(s.DB.WithContext(ctx), conversationID)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []domain.Message{}, 0, nil
	}

	items, err := repo.ListMessagesPage(s.DB.WithContext(ctx), conversationID, offset, pageSize)
	return items, total, err
}

// --- internal helpers ---

func (s *ConversationService) acquire(conversationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[conversationID] {
		return false
	}
	s.inFlight[conversationID] = true
	return true
}

func (s *ConversationService) release(conversationID string) {
	s.mu.Lock()
	delete(s.inFlight, conversationID)
	s.mu.Unlock()
}

func (s *ConversationService) state(conversationID string) *conversationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[conversationID]
	if !ok {
		st = &conversationState{cache: cache.New(s.CacheTTL)}
		s.states[conversationID] = st
	}
	return st
}

// persistMessage writes a message row, logging and swallowing failures.
func (s *ConversationService) persistMessage(ctx context.Context, conversationID, role, content, snapshot string) *domain.Message {
	m, err := repo.CreateMessage(s.DB.WithContext(ctx), conversationID, role, content, snapshot)
	if err != nil {
		s.Log.Warn().Err(err).
			Str("conversation_id", conversationID).
			Str("role", role).
			Msg("persist message failed")
		return nil
	}
	return m
}

// autoTitle replaces a placeholder conversation title with one derived from
// the first prompt. Best-effort.
func (s *ConversationService) autoTitle(ctx context.Context, conversationID, currentTitle, prompt string) {
	if !s.shouldAutoTitle(currentTitle) {
		return
	}
	gen := s.generateTitleFromPrompt(prompt)
	if gen == "" {
		return
	}
	if err := repo.UpdateConversationTitle(ctx, s.DB, conversationID, s.clipTitle(gen)); err != nil {
		s.Log.Warn().Err(err).Str("conversation_id", conversationID).Msg("auto-title failed")
	}
}

// shouldAutoTitle reports whether the current title is a placeholder.
func (s *ConversationService) shouldAutoTitle(current string) bool {
	t := strings.TrimSpace(strings.ToLower(current))
	return t == "" || t == strings.ToLower(defaultTitleNew)
}

// generateTitleFromPrompt derives a concise title from the prompt.
func (s *ConversationService) generateTitleFromPrompt(p string) string {
	toks := titleWordRE.FindAllString(strings.ToLower(strings.TrimSpace(p)), -1)
	if len(toks) == 0 {
		return ""
	}

	titleCaser := cases.Title(s.titleLocaleOrDefault())
	out := make([]string, 0, 8)
	for _, w := range toks {
		if _, skip := titleStopWords[w]; skip {
			continue
		}
		out = append(out, titleCaser.String(w))
		if len(out) >= 8 {
			break
		}
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, " ")
}

// clipTitle truncates a title to the configured maximum rune length.
func (s *ConversationService) clipTitle(title string) string {
	max := s.TitleMaxLen
	if max <= 0 {
		max = 60
	}
	if utf8.RuneCountInString(title) > max {
		return string([]rune(title)[:max])
	}
	return title
}

func (s *ConversationService) titleLocaleOrDefault() language.Tag {
	if s.TitleLocale == language.Und {
		return language.English
	}
	return s.TitleLocale
}

// titleWordRE extracts Unicode letters with optional trailing numbers.
var titleWordRE = regexp.MustCompile(`[\p{L}]+[\p{N}]*`)

// titleStopWords is a minimal English stop-word set for compact titles.
var titleStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "of": {}, "to": {}, "in": {},
	"is": {}, "are": {}, "for": {}, "on": {}, "with": {}, "by": {}, "from": {},
	"at": {}, "as": {}, "that": {}, "this": {}, "it": {}, "be": {}, "was": {}, "were": {},
}

// fallbackFor maps a model-call failure to its user-facing text.
func fallbackFor(err error) string {
	switch {
	case llm.IsTimeoutError(err):
		return fallbackTimeout
	case llm.IsAPIKeyError(err):
		return fallbackAPIKey
	case llm.IsNetworkError(err):
		return fallbackNetwork
	default:
		return fallbackGeneric
	}
}

// render flattens the bounded Q/A history into the prompt's log section.
func (st *conversationState) render() string {
	if len(st.pairs) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range st.pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("User: ")
		b.WriteString(p.query)
		b.WriteString("\nAssistant: ")
		b.WriteString(p.response)
	}
	return b.String()
}

// appendBounded appends keeping at most max elements, dropping oldest.
func appendBounded(xs []string, x string, max int) []string {
	xs = append(xs, x)
	if max > 0 && len(xs) > max {
		xs = xs[len(xs)-max:]
	}
	return xs
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"silktouch/internal/apperror"
	"silktouch/internal/config"
	"silktouch/internal/generative"
	"silktouch/internal/models"
	"silktouch/internal/repositories"

	"go.uber.org/zap"
)

const (
	SourcePrimary       = "primary"
	SourceFallback      = "fallback"
	SourceErrorFallback = "error_fallback"

	recommendationLimit = 6
	recentInteractions  = 10
	defaultTestQuery    = "Hello, can you help me?"
	apologyResponse     = "I'm having some technical difficulties right now. Please try browsing our website directly or contact our support team for immediate assistance."
)

// Assistant is the optional generative delegate together with its health report.
type Assistant interface {
	generative.Generator
	Status() generative.Status
}

// ChatTurn is one earlier message of the conversation.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatQuery struct {
	Query     string     `json:"query"`
	SessionID string     `json:"sessionId"`
	Context   []ChatTurn `json:"context"`
}

type ChatReply struct {
	Response  string `json:"response"`
	Intent    string `json:"intent"`
	SessionID string `json:"sessionId"`
	AIPowered bool   `json:"aiPowered"`
	Source    string `json:"source"`
}

type RecommendInput struct {
	Preferences string
	Category    string
	Budget      *float64
}

type Recommendation struct {
	Products  []models.Product `json:"products"`
	Analysis  string           `json:"analysis"`
	Count     int              `json:"count"`
	AIPowered bool             `json:"aiPowered"`
}

type TestReply struct {
	Query     string    `json:"query"`
	Response  string    `json:"response"`
	Intent    string    `json:"intent"`
	Source    string    `json:"source"`
	AIPowered bool      `json:"aiPowered"`
	Timestamp time.Time `json:"timestamp"`
}

type ChatbotAnalytics struct {
	TotalInteractions  int64                       `json:"totalInteractions"`
	IntentCounts       []models.IntentCount        `json:"intentCounts"`
	RecentInteractions []models.ChatbotInteraction `json:"recentInteractions"`
	GeminiStatus       generative.Status           `json:"geminiStatus"`
}

type ChatbotDebug struct {
	generative.Status
	ModelInitialized bool      `json:"modelInitialized"`
	Environment      string    `json:"environment"`
	Timestamp        time.Time `json:"timestamp"`
	Message          string    `json:"message,omitempty"`
	Error            string    `json:"error,omitempty"`
	Suggestion       string    `json:"suggestion,omitempty"`
}

type reply struct {
	text   string
	intent string
	source string
}

// ChatbotService answers shopper questions. It prefers the generative
// assistant and falls back to keyword rules whenever the assistant is absent or fails.
type ChatbotService struct {
	interactions repositories.InteractionRepository
	products     repositories.ProductRepository
	assistant    Assistant
	store        config.StoreConfig
	timeout      time.Duration
	env          string
	log          *zap.Logger
	now          func() time.Time
}

// NewChatbotService wires the chatbot. assistant may be nil.
func NewChatbotService(interactions repositories.InteractionRepository, products repositories.ProductRepository, assistant Assistant, store config.StoreConfig, timeout time.Duration, env string, log *zap.Logger) *ChatbotService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ChatbotService{
		interactions: interactions,
		products:     products,
		assistant:    assistant,
		store:        store,
		timeout:      timeout,
		env:          env,
		log:          log.Named("chatbot"),
		now:          time.Now,
	}
}

// Query answers a shopper message and records the exchange. Only an empty
// query is reported as an error; every other failure degrades to a canned reply.
func (s *ChatbotService) Query(ctx context.Context, userID *string, in ChatQuery) (*ChatReply, error) {
	if strings.TrimSpace(in.Query) == "" {
		return nil, apperror.Validation("Query is required", map[string]string{"query": "is required"})
	}

	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = "anonymous_" + strconv.FormatInt(s.now().UnixMilli(), 10)
	}

	r, err := s.safeRespond(ctx, in.Query, in.Context)
	if err == nil {
		err = s.interactions.Create(ctx, &models.ChatbotInteraction{
			UserID:    userID,
			SessionID: sessionID,
			Query:     in.Query,
			Response:  r.text,
			Intent:    r.intent,
		})
	}
	if err != nil {
		s.log.Error("chatbot pipeline failed", zap.Error(err))
		return s.apologize(ctx, userID, in), nil
	}

	return &ChatReply{
		Response:  r.text,
		Intent:    r.intent,
		SessionID: sessionID,
		AIPowered: r.source == SourcePrimary,
		Source:    r.source,
	}, nil
}

// apologize records the failed exchange if it can and returns the generic reply.
func (s *ChatbotService) apologize(ctx context.Context, userID *string, in ChatQuery) *ChatReply {
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = "error_" + strconv.FormatInt(s.now().UnixMilli(), 10)
	}
	query := in.Query
	if query == "" {
		query = "Unknown query"
	}
	err := s.interactions.Create(ctx, &models.ChatbotInteraction{
		UserID:    userID,
		SessionID: sessionID,
		Query:     query,
		Response:  apologyResponse,
		Intent:    models.IntentSystemError,
	})
	if err != nil {
		s.log.Error("failed to log chatbot error interaction", zap.Error(err))
	}
	return &ChatReply{
		Response:  apologyResponse,
		Intent:    models.IntentSystemError,
		SessionID: sessionID,
		AIPowered: false,
		Source:    SourceErrorFallback,
	}
}

// Test runs the response pipeline without recording anything.
func (s *ChatbotService) Test(ctx context.Context, query string) (*TestReply, error) {
	if strings.TrimSpace(query) == "" {
		query = defaultTestQuery
	}
	r, err := s.safeRespond(ctx, query, nil)
	if err != nil {
		return nil, apperror.Internal("Test failed", err)
	}
	return &TestReply{
		Query:     query,
		Response:  r.text,
		Intent:    r.intent,
		Source:    r.source,
		AIPowered: r.source == SourcePrimary,
		Timestamp: s.now(),
	}, nil
}

func (s *ChatbotService) safeRespond(ctx context.Context, query string, history []ChatTurn) (r reply, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("chatbot panic: %v", p)
		}
	}()
	return s.respond(ctx, query, history), nil
}

// respond asks the assistant first and falls back to the keyword rules.
// Only rule replies carry a classified intent.
func (s *ChatbotService) respond(ctx context.Context, query string, history []ChatTurn) reply {
	if text, ok := s.generate(ctx, s.chatPrompt(query, history)); ok {
		return reply{text: text, intent: models.IntentGeneral, source: SourcePrimary}
	}
	intent, canned := classify(s.store, query)
	return reply{text: canned, intent: intent, source: SourceFallback}
}

// generate calls the assistant under its own deadline. Any failure of the
// assistant, a panic included, reports ok=false.
func (s *ChatbotService) generate(ctx context.Context, prompt string) (text string, ok bool) {
	if s.assistant == nil {
		return "", false
	}
	defer func() {
		if p := recover(); p != nil {
			s.log.Warn("assistant panicked, using fallback", zap.Any("panic", p))
			text, ok = "", false
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.assistant.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, generative.ErrTimeout) {
			s.log.Warn("assistant timed out, using fallback", zap.Duration("timeout", s.timeout))
		} else {
			s.log.Debug("assistant unavailable, using fallback", zap.Error(err))
		}
		return "", false
	}
	text = strings.TrimSpace(text)
	return text, text != ""
}

func (s *ChatbotService) persona() string {
	st := s.store
	return fmt.Sprintf(`You are a helpful AI assistant for %[1]s, a modern e-commerce clothing website based in Dubai, UAE.

ABOUT %[2]s:
- We sell men's, women's, and kids' clothing
- Categories include: shirts, jeans, dresses, blazers, t-shirts, blouses, sweaters, jackets, polos, hoodies, formal wear
- We serve customers across the UAE (Dubai, Abu Dhabi, Sharjah, etc.)
- Currency: %[3]s
- Free shipping on orders over %[3]s %[4]s
- Standard delivery: %[5]s business days
- Express delivery: %[6]s days (additional fee)
- %[7]d-day return policy for unworn items with tags
- Sizes available: %[8]s
- We accept various payment methods

YOUR ROLE:
- Help customers find products
- Answer questions about orders, shipping, returns
- Provide sizing assistance
- Recommend products based on customer preferences
- Assist with general shopping queries
- Be friendly, helpful, and professional
- Use %[3]s for pricing when discussing costs
- Always be customer-focused and solution-oriented

GUIDELINES:
- Keep responses concise but helpful (2-3 sentences max)
- If you don't know specific product details, suggest they browse the website
- For order tracking, direct them to their account page
- For complex issues, suggest contacting customer support
- Always maintain a friendly, professional tone
- Use Middle East appropriate language and cultural sensitivity
`, st.Name, strings.ToUpper(st.Name), st.Currency, money(st.FreeShippingThreshold),
		st.StandardDelivery, st.ExpressDelivery, st.ReturnWindowDays, strings.Join(models.Sizes, ", "))
}

func (s *ChatbotService) chatPrompt(query string, history []ChatTurn) string {
	var b strings.Builder
	b.WriteString(s.persona())
	b.WriteString("\n")
	if len(history) > 0 {
		b.WriteString("CONVERSATION HISTORY:\n")
		for _, turn := range history {
			speaker := "Assistant"
			if turn.Role == "user" {
				speaker = "Customer"
			}
			fmt.Fprintf(&b, "%s: %s\n", speaker, turn.Content)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nCUSTOMER QUERY: %s\n\nPlease provide a helpful response as %s's AI assistant:", query, s.store.Name)
	return b.String()
}

// Recommend picks the best rated products for the given category and budget
// and explains the choice, with the assistant when it is available.
func (s *ChatbotService) Recommend(ctx context.Context, in RecommendInput) (*Recommendation, error) {
	switch in.Category {
	case models.CategoryMen, models.CategoryWomen, models.CategoryKids:
	default:
		in.Category = ""
	}

	products, err := s.products.Recommend(ctx, in.Category, in.Budget, recommendationLimit)
	if err != nil {
		return nil, apperror.Internal("Unable to generate recommendations at this time", err)
	}

	rec := &Recommendation{Products: products, Count: len(products)}
	if in.Preferences != "" {
		if text, ok := s.generate(ctx, s.recommendPrompt(in.Preferences, products)); ok {
			rec.Analysis = text
			rec.AIPowered = true
		}
	}
	if rec.Analysis == "" {
		rec.Analysis = s.templateAnalysis(in, len(products))
	}
	return rec, nil
}

func (s *ChatbotService) recommendPrompt(preferences string, products []models.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As %s's AI assistant, analyze these products and provide personalized recommendations based on customer preferences: %q\n\nAvailable products:\n", s.store.Name, preferences)
	for _, p := range products {
		fmt.Fprintf(&b, "- %s: %s (%s %s)\n", p.Name, p.Description, s.store.Currency, money(p.Price))
	}
	b.WriteString("\nProvide a brief, helpful explanation of why these products match their preferences:")
	return b.String()
}

func (s *ChatbotService) templateAnalysis(in RecommendInput, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on your preferences for %q, I've found %d great options for you. ", in.Preferences, count)
	if in.Category != "" {
		fmt.Fprintf(&b, "These are from our %s's collection, ", in.Category)
	}
	if in.Budget != nil {
		fmt.Fprintf(&b, "all within your budget of %s %s. ", s.store.Currency, money(*in.Budget))
	}
	b.WriteString("The selection includes our highest-rated and featured products that offer excellent quality and style. Each item has been chosen to match what you're looking for!")
	return b.String()
}

func (s *ChatbotService) status() generative.Status {
	if s.assistant == nil {
		return generative.Status{Provider: "none"}
	}
	return s.assistant.Status()
}

// Analytics summarizes recorded interactions for the admin dashboard.
func (s *ChatbotService) Analytics(ctx context.Context) (*ChatbotAnalytics, error) {
	total, err := s.interactions.Count(ctx)
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	counts, err := s.interactions.IntentCounts(ctx)
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	recent, err := s.interactions.Recent(ctx, recentInteractions)
	if err != nil {
		return nil, apperror.Internal("Server error", err)
	}
	return &ChatbotAnalytics{
		TotalInteractions:  total,
		IntentCounts:       counts,
		RecentInteractions: recent,
		GeminiStatus:       s.status(),
	}, nil
}

// Debug reports how the assistant is configured and what to do about it.
func (s *ChatbotService) Debug() *ChatbotDebug {
	st := s.status()
	d := &ChatbotDebug{
		Status:           st,
		ModelInitialized: st.Available,
		Environment:      s.env,
		Timestamp:        s.now(),
	}
	switch {
	case st.Provider == "" || st.Provider == "none":
		d.Message = "Using fallback responses - no generative provider configured"
		d.Suggestion = "Set GENERATIVE_PROVIDER and an API key to enable AI answers"
	case !st.APIKeyPresent && st.Provider != "mock":
		d.Error = "API key not found"
		d.Suggestion = "Add the API key to your .env file"
	case !st.Available:
		d.Error = "API key present but model failed to initialize"
		d.Suggestion = "Check server logs for model initialization errors, or try restarting"
	case st.LastError != "":
		d.Error = "Last request to the model failed"
		d.Message = "Fallback responses are used until the model recovers"
	default:
		d.Message = "Generative assistant is working correctly"
	}
	return d
}

package services

import (
	"context"
	"strings"

	"tassili/internal/models/db_models"
	"tassili/internal/models/response_models"
	"tassili/internal/repositories"
	"tassili/pkg/utils"
)

// The assistant is an explicit rule table, not a model: the first rule whose
// keyword matches the lowercased input wins, and trip-card rules attach the
// best catalog trip of their category.
type assistantRule struct {
	keywords     []string
	reply        string
	tripCategory db_models.TripCategory // empty for plain text replies
}

var assistantRules = []assistantRule{
	{
		keywords:     []string{"sahara", "desert"},
		reply:        "The Sahara desert is absolutely magical! I recommend Djanet for authentic desert experiences with traditional Berber camps. The best time to visit is October to April when temperatures are pleasant. Would you like me to show you some Sahara trip options?",
		tripCategory: db_models.CategoryDesert,
	},
	{
		keywords:     []string{"beach", "sea"},
		reply:        "Algeria has stunning Mediterranean beaches! Bejaia and Oran offer beautiful coastlines with crystal-clear waters. For families, I recommend resorts with kid-friendly facilities. Should I show you some coastal getaway options?",
		tripCategory: db_models.CategoryBeach,
	},
	{
		keywords: []string{"mountain", "hike"},
		reply:    "The Kabylie mountains are breathtaking! Perfect for hiking and nature lovers. You can visit traditional villages and enjoy fresh mountain air. The best seasons are spring and autumn. Interested in mountain adventures?",
	},
	{
		keywords: []string{"budget", "cheap"},
		reply:    "I can find great budget-friendly options for you! Algiers city breaks start around 25,000 DA, and there are amazing camping experiences in the Sahara for 35,000 DA. What's your preferred budget range?",
	},
	{
		keywords: []string{"family", "kids"},
		reply:    "Perfect for families! I recommend beach resorts in Bejaia with kid clubs, or cultural tours in Algiers with interactive museum visits. Many agencies offer family packages with special rates for children.",
	},
}

const assistantDefaultReply = "That sounds interesting! Algeria has so much to offer - from Sahara adventures to Mediterranean beaches and historic cities. Tell me more about what you're looking for, and I'll find the perfect trip for you!"

var quickSuggestions = []string{
	"Sahara desert trips",
	"Beach destinations",
	"Mountain adventures",
	"City breaks",
	"Budget under 50,000 DA",
	"Family-friendly options",
}

type AssistantServiceInterface interface {
	Reply(ctx context.Context, text string) (*response_models.AssistantReply, error)
	QuickSuggestions() []string
}

type AssistantService struct {
	tripRepo repositories.TripRepository
}

func NewAssistantService(tripRepo repositories.TripRepository) AssistantServiceInterface {
	return &AssistantService{
		tripRepo: tripRepo,
	}
}

func (a *AssistantService) Reply(ctx context.Context, text string) (*response_models.AssistantReply, error) {
	lower := strings.ToLower(text)

	for _, rule := range assistantRules {
		if !matchesAny(lower, rule.keywords) {
			continue
		}

		reply := &response_models.AssistantReply{
			Kind: response_models.ReplyKindText,
			Text: rule.reply,
		}

		if rule.tripCategory != "" {
			trip, err := a.tripRepo.FirstByCategory(ctx, rule.tripCategory)
			if err != nil {
				return nil, utils.ErrDatabaseError
			}
			// A missing catalog entry degrades to plain text, not an error.
			if trip != nil {
				tripResp := ToTripResponse(*trip)
				reply.Kind = response_models.ReplyKindTripCard
				reply.Trip = &tripResp
			}
		}
		return reply, nil
	}

	return &response_models.AssistantReply{
		Kind: response_models.ReplyKindText,
		Text: assistantDefaultReply,
	}, nil
}

func (a *AssistantService) QuickSuggestions() []string {
	out := make([]string, len(quickSuggestions))
	copy(out, quickSuggestions)
	return out
}

func matchesAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

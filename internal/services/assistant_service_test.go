package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tassili/internal/models/db_models"
	"tassili/internal/models/response_models"
)

func TestAssistantReplyMatchesDesertRule(t *testing.T) {
	trip := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	svc := NewAssistantService(newFakeTripRepo(trip))

	reply, err := svc.Reply(context.Background(), "Tell me about the Sahara")
	require.NoError(t, err)

	assert.Equal(t, response_models.ReplyKindTripCard, reply.Kind)
	assert.Contains(t, reply.Text, "Djanet")
	require.NotNil(t, reply.Trip)
	assert.Equal(t, "Djanet Desert Magic", reply.Trip.Title)
}

func TestAssistantReplyIsCaseInsensitive(t *testing.T) {
	trip := storedTrip("Bejaia Coastal Escape", "62,000 DA", 62000, db_models.CategoryBeach)
	svc := NewAssistantService(newFakeTripRepo(trip))

	reply, err := svc.Reply(context.Background(), "BEACH holidays please")
	require.NoError(t, err)

	assert.Equal(t, response_models.ReplyKindTripCard, reply.Kind)
	require.NotNil(t, reply.Trip)
	assert.Equal(t, "Bejaia Coastal Escape", reply.Trip.Title)
}

func TestAssistantTripCardDegradesWithoutCatalogMatch(t *testing.T) {
	svc := NewAssistantService(newFakeTripRepo())

	reply, err := svc.Reply(context.Background(), "sahara adventure")
	require.NoError(t, err)

	assert.Equal(t, response_models.ReplyKindText, reply.Kind)
	assert.Nil(t, reply.Trip)
	assert.NotEmpty(t, reply.Text)
}

func TestAssistantTextOnlyRules(t *testing.T) {
	svc := NewAssistantService(newFakeTripRepo())

	for _, msg := range []string{"good mountain hikes?", "something cheap", "travelling with kids"} {
		reply, err := svc.Reply(context.Background(), msg)
		require.NoError(t, err)
		assert.Equal(t, response_models.ReplyKindText, reply.Kind, msg)
		assert.Nil(t, reply.Trip, msg)
	}
}

func TestAssistantDefaultReply(t *testing.T) {
	svc := NewAssistantService(newFakeTripRepo())

	reply, err := svc.Reply(context.Background(), "what's the weather like?")
	require.NoError(t, err)

	assert.Equal(t, response_models.ReplyKindText, reply.Kind)
	assert.Equal(t, assistantDefaultReply, reply.Text)
}

func TestAssistantFirstMatchingRuleWins(t *testing.T) {
	trip := storedTrip("Djanet Desert Magic", "89,000 DA", 89000, db_models.CategoryDesert)
	svc := NewAssistantService(newFakeTripRepo(trip))

	// mentions both desert and budget; the desert rule is listed first
	reply, err := svc.Reply(context.Background(), "cheap desert trips")
	require.NoError(t, err)
	assert.Equal(t, response_models.ReplyKindTripCard, reply.Kind)
}

func TestQuickSuggestionsAreCopied(t *testing.T) {
	svc := NewAssistantService(newFakeTripRepo())

	first := svc.QuickSuggestions()
	require.NotEmpty(t, first)
	first[0] = "mutated"

	second := svc.QuickSuggestions()
	assert.NotEqual(t, "mutated", second[0])
}

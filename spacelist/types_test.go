package spacelist

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotHelpers(t *testing.T) {
	bot := Bot{
		ID:                  "bot-1",
		Username:            "Helper",
		Discriminator:       "0042",
		ChildFriendlyAvatar: false,
		CreatedAt:           1508817120000,
		UpdatedAt:           1600000000000,
	}

	assert.Equal(t, "Helper#0042", bot.Tag())
	assert.True(t, bot.IsNSFW())
	assert.Equal(t, time.UnixMilli(1508817120000), bot.Created())
	assert.Equal(t, time.UnixMilli(1600000000000), bot.Updated())

	bot.ChildFriendlyAvatar = true
	assert.False(t, bot.IsNSFW())
}

func TestBotPageURL(t *testing.T) {
	bot := Bot{ID: "bot-1"}
	assert.Equal(t, SiteURL+"/bots/bot-1", bot.PageURL())

	bot.Vanity = "helper"
	assert.Equal(t, SiteURL+"/bots/helper", bot.PageURL())
}

func TestBotOwnerMap(t *testing.T) {
	bot := Bot{
		Owners: []User{
			{ID: "u1", Username: "First", Discriminator: "0001"},
			{ID: "u2", Username: "Second", Discriminator: "0002"},
		},
	}

	owners := bot.OwnerMap()
	require.Equal(t, 2, owners.Len())
	assert.Equal(t, []string{"u1", "u2"}, owners.Keys())

	second, ok := owners.Get("u2")
	require.True(t, ok)
	assert.Equal(t, "Second#0002", second.Tag())

	// Each call builds a fresh map.
	owners.Delete("u1")
	assert.Equal(t, 2, bot.OwnerMap().Len())
}

func TestUserHelpers(t *testing.T) {
	user := User{
		ID:            "u1",
		Username:      "Owner",
		Discriminator: "1234",
		CreatedAt:     1500000000000,
	}

	assert.Equal(t, "Owner#1234", user.Tag())
	assert.Equal(t, time.UnixMilli(1500000000000), user.Created())
	assert.Equal(t, SiteURL+"/users/u1", user.PageURL())
}

func TestUpvoteVoted(t *testing.T) {
	vote := Upvote{Timestamp: 1600000000000}
	assert.Equal(t, time.UnixMilli(1600000000000), vote.Voted())
}

func TestBotDecodeMissingFields(t *testing.T) {
	// Incomplete responses decode to zero values rather than failing.
	var bot Bot
	require.NoError(t, json.Unmarshal([]byte(`{"id": "bot-1"}`), &bot))

	assert.Equal(t, "bot-1", bot.ID)
	assert.Empty(t, bot.Username)
	assert.Zero(t, bot.ServerCount)
	assert.Nil(t, bot.Owners)
	assert.Equal(t, 0, bot.OwnerMap().Len())
}

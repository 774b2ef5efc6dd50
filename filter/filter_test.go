package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacelist/go-spacelist/spacelist"
)

func sampleBot() spacelist.Bot {
	return spacelist.Bot{
		ID:                  "bot-1",
		Username:            "MusicMaster",
		Discriminator:       "0001",
		Prefix:              "!",
		Library:             "discord.js",
		ServerCount:         250,
		Shards:              []int{120, 130},
		Owners:              []spacelist.User{{ID: "u1"}, {ID: "u2"}},
		Approved:            true,
		ChildFriendlyAvatar: true,
		CreatedAt:           time.Now().AddDate(0, 0, -10).UnixMilli(),
	}
}

func TestCompileAndMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{
			name:       "server count threshold",
			expression: "server_count > 100",
			want:       true,
		},
		{
			name:       "server count too low",
			expression: "server_count > 1000",
			want:       false,
		},
		{
			name:       "boolean fields",
			expression: "approved and not nsfw",
			want:       true,
		},
		{
			name:       "string helper",
			expression: `contains(username, "music")`,
			want:       true,
		},
		{
			name:       "owner count",
			expression: "owner_count == 2",
			want:       true,
		},
		{
			name:       "date helper",
			expression: "daysSince(created) < 30",
			want:       true,
		},
		{
			name:       "combined",
			expression: `approved and server_count >= 250 and startsWith(library, "discord")`,
			want:       true,
		},
	}

	bot := sampleBot()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())

			got, err := f.Match(bot)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "empty", expression: ""},
		{name: "whitespace only", expression: "   "},
		{name: "syntax error", expression: "server_count >"},
		{name: "non-boolean result", expression: "1 + 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			require.Error(t, err)

			var compErr *CompilationError
			require.ErrorAs(t, err, &compErr)
		})
	}
}

func TestMatchUndefinedVariableIsFalsy(t *testing.T) {
	// Unknown identifiers compile (bot properties are dynamic) and
	// evaluate as nil, so comparisons against them are simply false.
	f, err := Compile("no_such_field == 42")
	require.NoError(t, err)

	got, err := f.Match(sampleBot())
	require.NoError(t, err)
	assert.False(t, got)
}

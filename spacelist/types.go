package spacelist

import (
	"fmt"
	"time"

	"github.com/spacelist/go-spacelist/collection"
)

// User represents a user account on the list site.
type User struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Discriminator    string    `json:"discriminator"`
	Avatar           string    `json:"avatar,omitempty"`
	ShortDescription string    `json:"short_description,omitempty"`
	Links            UserLinks `json:"links,omitempty"`
	CreatedAt        int64     `json:"created_at"`
}

// UserLinks holds the optional external links on a user profile.
type UserLinks struct {
	Website string `json:"website,omitempty"`
	GitHub  string `json:"github,omitempty"`
}

// Tag returns the user's full tag, username and discriminator joined.
func (u *User) Tag() string {
	return fmt.Sprintf("%s#%s", u.Username, u.Discriminator)
}

// Created returns when the account was created. The wire format is
// milliseconds since the epoch.
func (u *User) Created() time.Time {
	return time.UnixMilli(u.CreatedAt)
}

// PageURL returns the user's profile page on the list site.
func (u *User) PageURL() string {
	return fmt.Sprintf("%s/users/%s", SiteURL, u.ID)
}

// Bot represents a listed bot and its metadata.
type Bot struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	Discriminator       string `json:"discriminator"`
	Avatar              string `json:"avatar,omitempty"`
	ShortDescription    string `json:"short_description"`
	FullDescription     string `json:"full_description,omitempty"`
	Library             string `json:"library,omitempty"`
	Prefix              string `json:"prefix"`
	Invite              string `json:"invite"`
	Vanity              string `json:"vanity,omitempty"`
	ServerCount         int    `json:"server_count"`
	Shards              []int  `json:"shards,omitempty"`
	Owners              []User `json:"owners"`
	CreatedAt           int64  `json:"created_at"`
	UpdatedAt           int64  `json:"updated_at"`
	Approved            bool   `json:"approved"`
	ChildFriendlyAvatar bool   `json:"avatar_child_friendly"`
	Featured            bool   `json:"featured"`
}

// Tag returns the bot's full tag, username and discriminator joined.
func (b *Bot) Tag() string {
	return fmt.Sprintf("%s#%s", b.Username, b.Discriminator)
}

// IsNSFW reports whether the bot's avatar is flagged as not child friendly.
func (b *Bot) IsNSFW() bool {
	return !b.ChildFriendlyAvatar
}

// Created returns when the bot was submitted to the list.
func (b *Bot) Created() time.Time {
	return time.UnixMilli(b.CreatedAt)
}

// Updated returns when the listing was last edited.
func (b *Bot) Updated() time.Time {
	return time.UnixMilli(b.UpdatedAt)
}

// OwnerMap returns the bot's owners keyed by user ID, in listing order.
// The map is built fresh on every call.
func (b *Bot) OwnerMap() *collection.Ordered[string, User] {
	owners := collection.NewOrdered[string, User]()
	for _, owner := range b.Owners {
		owners.Set(owner.ID, owner)
	}
	return owners
}

// PageURL returns the bot's listing page, preferring the vanity slug.
func (b *Bot) PageURL() string {
	if b.Vanity != "" {
		return fmt.Sprintf("%s/bots/%s", SiteURL, b.Vanity)
	}
	return fmt.Sprintf("%s/bots/%s", SiteURL, b.ID)
}

// Upvote records that a user endorsed the bot.
type Upvote struct {
	User      User  `json:"user"`
	Timestamp int64 `json:"timestamp"`
}

// Voted returns when the upvote was cast.
func (v *Upvote) Voted() time.Time {
	return time.UnixMilli(v.Timestamp)
}

// Statistics holds the site-wide counters from the statistics endpoint.
type Statistics struct {
	Bots           int `json:"bots"`
	ApprovedBots   int `json:"approved_bots"`
	UnapprovedBots int `json:"unapproved_bots"`
	Users          int `json:"users"`
	Tags           int `json:"tags"`
}

// pageEnvelope carries the listing metadata every paginated response
// includes alongside its results.
type pageEnvelope struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	Total     int `json:"total"`
	PageCount int `json:"page_count"`
}

func (e pageEnvelope) info() collection.PageInfo {
	return collection.PageInfo{
		Page:      e.Page,
		Limit:     e.Limit,
		Total:     e.Total,
		PageCount: e.PageCount,
	}
}

type botsResponse struct {
	pageEnvelope
	Results []Bot `json:"results"`
}

type upvotesResponse struct {
	pageEnvelope
	Results []Upvote `json:"results"`
}

// serverCountBody is the POST body for a plain server count update.
type serverCountBody struct {
	ServerCount int `json:"server_count"`
}

// shardsBody is the POST body for a per-shard count update.
type shardsBody struct {
	Shards []int `json:"shards"`
}

// Package collection provides a generic insertion-ordered map and a page
// wrapper used for paginated API listings.
//
// Ordered keeps keys in the order they were first inserted; overwriting an
// existing key keeps its original position. Page embeds Ordered and adds
// the page/limit/total metadata a listing endpoint returns alongside its
// items.
package collection

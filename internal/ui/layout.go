package ui

import "time"

// Fixed chrome around the scrollable feed.
const (
	headerHeight = 1
	footerHeight = 1
)

// Product card geometry.
const (
	// cardWidth is the styled width of a card, padding included.
	cardWidth = 26

	// cardOuterWidth adds the rounded border.
	cardOuterWidth = cardWidth + 2

	// cardGap is the column gap between cards.
	cardGap = 1

	// cardTextWidth is the room left for text inside a card.
	cardTextWidth = cardWidth - 2
)

// LayoutCompactWidth is the threshold below which the top bar drops labels.
const LayoutCompactWidth = 70

// Timing constants.
const (
	// DefaultBannerInterval is the auto-advance period of the promotion banner.
	DefaultBannerInterval = 4 * time.Second

	// ToastLifetime is how long a toast stays in the footer.
	ToastLifetime = 2 * time.Second
)

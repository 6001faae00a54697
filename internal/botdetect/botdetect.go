// Package botdetect classifies requests as preview-crawler or human traffic
// from the declared User-Agent. The classification is a spoofable heuristic
// used only to pick the rendering path that gives crawlers a complete page;
// it is never an access-control boundary.
package botdetect

import "strings"

// signatures is the fixed allow-list of known crawler markers. Matching is
// case-insensitive substring.
var signatures = []string{
	"facebookexternalhit",
	"facebot",
	"twitterbot",
	"slackbot",
	"slack-imgproxy",
	"discordbot",
	"telegrambot",
	"whatsapp",
	"linkedinbot",
	"pinterest",
	"googlebot",
	"bingbot",
	"yandexbot",
	"embedly",
	"quora link preview",
	"skypeuripreview",
	"vkshare",
	"redditbot",
	"applebot",
}

// IsBot reports whether the identity string matches a known crawler
// signature. The empty string is always human traffic.
func IsBot(userAgent string) bool {
	if userAgent == "" {
		return false
	}

	lowered := strings.ToLower(userAgent)
	for _, signature := range signatures {
		if strings.Contains(lowered, signature) {
			return true
		}
	}
	return false
}

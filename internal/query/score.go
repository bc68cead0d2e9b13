// IssueScout - Open Source Issue Discovery and Recommendation
// Copyright 2026 IssueScout Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/issuescout/issuescout

package query

import (
	"strings"
	"time"

	"github.com/issuescout/issuescout/internal/models"
)

// Score weights. The score is an additive heuristic, computed independently
// per issue with no normalization across the result set.
const (
	scoreLanguageMatch = 10
	scoreBeginnerLabel = 15
	scorePopularRepo   = 5
	scoreRecentUpdate  = 3

	popularRepoStars = 100
	recencyWindow    = 7 * 24 * time.Hour
)

// beginnerSignalLabels are the labels that mark an issue as approachable
// for new contributors. Matched case-insensitively.
var beginnerSignalLabels = []string{
	"good first issue",
	"beginner friendly",
	"help wanted",
}

// hasBeginnerSignal reports whether any label is a beginner-signal label.
func hasBeginnerSignal(issue *models.Issue) bool {
	for _, label := range issue.Labels {
		folded := strings.ToLower(label)
		for _, signal := range beginnerSignalLabels {
			if folded == signal {
				return true
			}
		}
	}
	return false
}

// Score computes the recommendation score for an issue, optionally
// personalized to a user. user may be nil for anonymous scoring. The score
// is non-negative and monotone in each signal:
//
//   - +10 when the issue's language is one of the user's top languages
//   - +15 when the issue carries a beginner-signal label
//   - +5 when the repository has more than 100 stars
//   - +3 when the issue was updated within the last 7 days of now
func Score(issue *models.Issue, user *models.UserProfile, now time.Time) int {
	score := 0
	if user != nil && issue.Language != "" && user.UsesLanguage(issue.Language) {
		score += scoreLanguageMatch
	}
	if hasBeginnerSignal(issue) {
		score += scoreBeginnerLabel
	}
	if issue.RepositoryStars > popularRepoStars {
		score += scorePopularRepo
	}
	if now.Sub(issue.UpdatedAt) < recencyWindow {
		score += scoreRecentUpdate
	}
	return score
}

// RecommendedFor reports whether the issue should carry the recommended
// flag for the user: its language is in the user's top languages, or it
// carries a beginner-signal label. This flag is deliberately simpler than
// the additive score; the two are computed independently.
func RecommendedFor(issue *models.Issue, user *models.UserProfile) bool {
	if user != nil && issue.Language != "" && user.UsesLanguage(issue.Language) {
		return true
	}
	return hasBeginnerSignal(issue)
}

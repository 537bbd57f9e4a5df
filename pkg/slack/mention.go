package slack

import (
	"strings"
)

// Mention match scores.
const (
	scoreFullName  = 100
	scoreNickname  = 60
	scoreFirstName = 50
	scoreRoleMin   = 10
	scoreRoleMax   = 20
)

// AgentProfile is one resolvable agent for mention matching.
type AgentProfile struct {
	ID          string
	SlackUserID string
	Name        string
	Nicknames   []string
	Role        string
	Keywords    []string
}

// MatchMention resolves a message's mention to an agent. Resolution order:
// exact Slack user-id match, then display-name match, then keyword scoring
// (full name 100, nickname 60, first name 50, role keyword 10..20). When
// mentions were present but nothing matched, no default agent is returned.
func MatchMention(text string, mentionedUserIDs []string, agents []AgentProfile) *AgentProfile {
	for _, userID := range mentionedUserIDs {
		for i := range agents {
			if agents[i].SlackUserID != "" && agents[i].SlackUserID == userID {
				return &agents[i]
			}
		}
	}

	lower := strings.ToLower(text)

	for i := range agents {
		if agents[i].Name != "" && strings.Contains(lower, strings.ToLower(agents[i].Name)) {
			return &agents[i]
		}
	}

	var best *AgentProfile
	bestScore := 0
	for i := range agents {
		score := keywordScore(lower, &agents[i])
		if score > bestScore {
			best, bestScore = &agents[i], score
		}
	}
	if best != nil {
		return best
	}

	// Mentions present but unmatched: never fall back to a default agent.
	return nil
}

func keywordScore(lower string, agent *AgentProfile) int {
	score := 0
	if agent.Name != "" && strings.Contains(lower, strings.ToLower(agent.Name)) {
		score += scoreFullName
	}
	for _, nick := range agent.Nicknames {
		if nick != "" && strings.Contains(lower, strings.ToLower(nick)) {
			score += scoreNickname
			break
		}
	}
	if first := firstName(agent.Name); first != "" && strings.Contains(lower, strings.ToLower(first)) && !strings.Contains(lower, strings.ToLower(agent.Name)) {
		score += scoreFirstName
	}
	roleScore := 0
	for _, kw := range append([]string{agent.Role}, agent.Keywords...) {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			roleScore += scoreRoleMin
		}
	}
	if roleScore > scoreRoleMax {
		roleScore = scoreRoleMax
	}
	return score + roleScore
}

func firstName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return ""
	}
	return parts[0]
}

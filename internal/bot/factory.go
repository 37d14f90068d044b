package bot

import "fmt"

// NewAgent creates a bot agent for the given bot user id.
func NewAgent(userID string) (*Agent, error) {
	if !IsBot(userID) {
		return nil, fmt.Errorf("user id %q is not a bot", userID)
	}
	name := DisplayName(userID)
	if name == "" {
		name = "Bot"
	}
	return &Agent{
		ID:       userID,
		Name:     name,
		Strategy: &steadyBrain{},
	}, nil
}

package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveTripID turns user input into a trip UUID. Accepts an exact name
// (case-insensitive), a full UUID, or a unique UUID prefix.
func resolveTripID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("trip is required")
	}

	trips, err := app.Trips.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, t := range trips {
		if strings.EqualFold(t.Name, input) {
			return t.ID, nil
		}
	}

	for _, t := range trips {
		if t.ID == input {
			return t.ID, nil
		}
	}

	var matches []string
	for _, t := range trips {
		if strings.HasPrefix(t.ID, input) {
			matches = append(matches, t.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("trip not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("trip ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

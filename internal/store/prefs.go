package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HVLAB-SJ/hvlab-go/internal/models"
	"github.com/google/uuid"
)

// calendarPrefsKey is the single typed key for calendar view state.
// This table replaces the per-user localStorage keys the web client used
// to concatenate by hand.
const calendarPrefsKey = "calendar"

// LoadCalendarPrefs returns the user's saved calendar state, or defaults
// when none has been saved yet.
func LoadCalendarPrefs(ctx context.Context, db Querier, userID uuid.UUID) (models.CalendarPrefs, error) {
	prefs := models.CalendarPrefs{
		LastProjectFilter: "all",
		HiddenEventIDs:    []string{},
		AppliedProcessIDs: []string{},
	}

	var raw []byte
	err := db.QueryRow(ctx,
		`SELECT value FROM user_preferences WHERE user_id = $1 AND key = $2`,
		userID, calendarPrefsKey,
	).Scan(&raw)
	if err != nil {
		if IsNotFound(err) {
			return prefs, nil
		}
		return prefs, fmt.Errorf("failed to load calendar prefs: %w", err)
	}

	if err := json.Unmarshal(raw, &prefs); err != nil {
		return prefs, fmt.Errorf("failed to decode calendar prefs: %w", err)
	}
	return prefs, nil
}

// SaveCalendarPrefs upserts the user's calendar state
func SaveCalendarPrefs(ctx context.Context, db Querier, userID uuid.UUID, prefs models.CalendarPrefs) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("failed to encode calendar prefs: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO user_preferences (user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, userID, calendarPrefsKey, raw)
	if err != nil {
		return fmt.Errorf("failed to save calendar prefs: %w", err)
	}
	return nil
}

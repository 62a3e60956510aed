package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/weeksoflife/internal/client/models"
)

// timestampLayout is fixed-width UTC ISO-8601, so encoded instants sort
// lexically. Decoding accepts any RFC 3339 text, including the millisecond
// form produced by JavaScript's toISOString.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

func encodeTime(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func decodeTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// userRecord is the stored shape of models.User; dates travel as text.
type userRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birthDate"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func encodeUser(u models.User) ([]byte, error) {
	return json.Marshal(userRecord{
		ID:        u.ID,
		Name:      u.Name,
		BirthDate: encodeTime(u.BirthDate),
		CreatedAt: encodeTime(u.CreatedAt),
		UpdatedAt: encodeTime(u.UpdatedAt),
	})
}

func decodeUser(b []byte) (*models.User, error) {
	var rec userRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, err
	}

	u := &models.User{ID: rec.ID, Name: rec.Name}
	fields := []struct {
		name string
		in   string
		out  *time.Time
	}{
		{"birthDate", rec.BirthDate, &u.BirthDate},
		{"createdAt", rec.CreatedAt, &u.CreatedAt},
		{"updatedAt", rec.UpdatedAt, &u.UpdatedAt},
	}
	for _, f := range fields {
		t, err := decodeTime(f.in)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.out = t
	}
	return u, nil
}

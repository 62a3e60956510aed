package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/weeksoflife/internal/client/models"
	"github.com/dmitrijs2005/weeksoflife/internal/common"
)

// CreateBackup snapshots every record kind. A record that cannot be read is
// exported as null rather than failing the backup.
func (s *store) CreateBackup(ctx context.Context) ([]byte, error) {
	data := &models.BackupData{}

	if u, ok := s.GetUser(ctx); ok {
		raw, err := encodeUser(*u)
		if err != nil {
			return nil, fmt.Errorf("encode user: %w", err)
		}
		data.User = raw
	}
	if mode, ok := s.GetTheme(ctx); ok {
		data.Theme = &mode
	}
	completed := s.IsOnboardingCompleted(ctx)
	data.OnboardingCompleted = &completed
	if raw := s.read(ctx, common.KeyGridPreferences); raw != nil && json.Valid(raw) {
		data.GridPreferences = raw
	}

	backup := models.Backup{
		Version:   common.BackupVersion,
		Timestamp: encodeTime(s.clock.Now()),
		Data:      data,
	}

	b, err := json.Marshal(backup)
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return b, nil
}

// RestoreBackup writes each field present in blob to its key. Fields that
// are missing or null are left untouched. Restoration is not atomic: when a
// write fails, earlier fields stay restored and the error is returned.
func (s *store) RestoreBackup(ctx context.Context, blob []byte) error {
	var backup models.Backup
	if err := json.Unmarshal(blob, &backup); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidFormat, err)
	}
	if backup.Data == nil {
		return fmt.Errorf("%w: missing data", common.ErrInvalidFormat)
	}

	switch backup.Version {
	case common.BackupVersion, "":
		return s.restoreV1(ctx, backup.Data)
	default:
		return fmt.Errorf("%w: unsupported backup version %q", common.ErrInvalidFormat, backup.Version)
	}
}

// restoreV1 decodes and checks every present field before the first write,
// so a malformed blob leaves the store untouched.
func (s *store) restoreV1(ctx context.Context, data *models.BackupData) error {
	var user *models.User
	if raw := data.User; present(raw) {
		u, err := decodeUser(raw)
		if err != nil {
			return fmt.Errorf("%w: user: %w", common.ErrInvalidFormat, err)
		}
		user = u
	}

	theme := data.Theme
	if theme != nil && *theme == "" {
		theme = nil
	}
	if theme != nil && !theme.Valid() {
		return fmt.Errorf("%w: unknown theme mode %q", common.ErrInvalidFormat, *theme)
	}

	var prefs []byte
	if raw := data.GridPreferences; present(raw) {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return fmt.Errorf("%w: gridPreferences: %w", common.ErrInvalidFormat, err)
		}
		prefs = bytes.TrimSpace(raw)
	}

	if user != nil {
		if err := s.SetUser(ctx, *user); err != nil {
			return err
		}
	}
	if theme != nil {
		if err := s.SetTheme(ctx, *theme); err != nil {
			return err
		}
	}
	if data.OnboardingCompleted != nil {
		if err := s.SetOnboardingCompleted(ctx, *data.OnboardingCompleted); err != nil {
			return err
		}
	}
	if prefs != nil {
		if err := s.write(ctx, common.KeyGridPreferences, prefs); err != nil {
			return err
		}
	}

	s.log.Info(ctx, "backup restored")
	return nil
}

// present reports whether raw carries a value other than JSON null.
func present(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

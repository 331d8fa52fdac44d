package firebasesdk

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"iis_schedule/config"
	"iis_schedule/errs"
)

func TestNewPublisherDisabled(t *testing.T) {
	_, err := NewPublisher(context.Background(), &config.FirebaseConfig{}, zap.NewNop())
	if !errors.Is(err, errs.ErrPublishDisabled) {
		t.Fatalf("expected ErrPublishDisabled, got %v", err)
	}
}

func TestRefPath(t *testing.T) {
	if got := RefPath("schedules", "124402"); got != "schedules/124402" {
		t.Errorf("got %q", got)
	}
	if got := RefPath("", "124402"); got != "124402" {
		t.Errorf("got %q", got)
	}
}

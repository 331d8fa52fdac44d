package firebasesdk

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"iis_schedule/config"
	"iis_schedule/errs"
	"iis_schedule/model"
)

// Publisher uploads parsed schedules to a Firebase Realtime Database.
type Publisher struct {
	client *db.Client
	root   string
	logger *zap.Logger
}

func NewPublisher(ctx context.Context, cfg *config.FirebaseConfig, logger *zap.Logger) (*Publisher, error) {
	if cfg.DatabaseURL == "" {
		return nil, errs.ErrPublishDisabled
	}

	conf := &firebase.Config{
		DatabaseURL: cfg.DatabaseURL,
	}
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, conf, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase database: %w", err)
	}

	return &Publisher{client: client, root: cfg.Root, logger: logger}, nil
}

func RefPath(root, groupID string) string {
	if root == "" {
		return groupID
	}
	return root + "/" + groupID
}

// Publish replaces the stored schedule of the group.
func (p *Publisher) Publish(ctx context.Context, groupID string, parsed *model.ParsedSchedule) error {
	if parsed == nil {
		return fmt.Errorf("publish %s: empty schedule", groupID)
	}
	path := RefPath(p.root, groupID)
	if err := p.client.NewRef(path).Set(ctx, parsed); err != nil {
		return fmt.Errorf("publish %s: %w", path, err)
	}
	p.logger.Info("schedule published", zap.String("ref", path))
	return nil
}

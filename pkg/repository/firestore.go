package repository

import (
	"context"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/roster/pkg/domain/interfaces"
	"github.com/secmon-lab/roster/pkg/domain/model"
	"github.com/secmon-lab/roster/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	notificationsCollection = "notifications"

	fieldSessionID = "session_id"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permission
	_, err = client.Collection(notificationsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// PutNotification saves a notification to Firestore
func (f *Firestore) PutNotification(ctx context.Context, notification *model.Notification) error {
	if notification == nil {
		return goerr.New("notification is nil")
	}
	if notification.ID == "" {
		return goerr.New("notification ID is empty")
	}
	if notification.SessionID == "" {
		return goerr.New("notification session ID is empty")
	}

	_, err := f.client.Collection(notificationsCollection).Doc(notification.ID.String()).Set(ctx, notification)
	if err != nil {
		return goerr.Wrap(err, "failed to save notification to firestore",
			goerr.V("notificationID", notification.ID))
	}

	return nil
}

// PopNotifications returns and removes the notifications of a session
func (f *Firestore) PopNotifications(ctx context.Context, sessionID types.SessionID) ([]*model.Notification, error) {
	if sessionID == "" {
		return nil, goerr.New("session ID is empty")
	}

	// No OrderBy to avoid requiring a composite index; sorted in memory
	iter := f.client.Collection(notificationsCollection).
		Where(fieldSessionID, "==", sessionID.String()).
		Documents(ctx)
	defer iter.Stop()

	var (
		refs          []*firestore.DocumentRef
		notifications []*model.Notification
	)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate notifications",
				goerr.V("sessionID", sessionID))
		}

		refs = append(refs, doc.Ref)

		var n model.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, goerr.Wrap(err, "failed to decode notification",
				goerr.V("docID", doc.Ref.ID))
		}
		if n.IsExpired() {
			continue
		}
		notifications = append(notifications, &n)
	}

	for _, ref := range refs {
		if _, err := ref.Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
			return nil, goerr.Wrap(err, "failed to delete notification",
				goerr.V("docID", ref.ID))
		}
	}

	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.Before(notifications[j].CreatedAt)
	})

	return notifications, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

var _ interfaces.Repository = (*Firestore)(nil) // Compile-time interface check

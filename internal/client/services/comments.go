package services

import (
	"context"
	"time"

	"github.com/fintechdocs/creditapp/internal/client/api"
	"github.com/fintechdocs/creditapp/internal/client/models"
	"github.com/fintechdocs/creditapp/internal/client/session"
	"github.com/fintechdocs/creditapp/internal/common"
	"github.com/fintechdocs/creditapp/internal/logging"
)

// commentDateLayout is the timestamp format the backend expects.
const commentDateLayout = "2006-01-02 15:04:05"

// CommentService posts manager comments on client records.
type CommentService struct {
	api   api.Client
	store *session.Store
	log   logging.Logger

	now func() time.Time // test seam
}

func NewCommentService(apiClient api.Client, store *session.Store, log logging.Logger) *CommentService {
	return &CommentService{api: apiClient, store: store, log: log, now: time.Now}
}

// Post submits a comment on the client identified by its INN. The author
// and API base come from the current session.
func (s *CommentService) Post(ctx context.Context, clientINN, text string) error {
	u, err := s.store.Session(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		return common.ErrorUnauthorized
	}

	comment := models.Comment{
		ClientINN:   clientINN,
		Author:      u.ID,
		Comment:     text,
		CommentDate: s.now().Format(commentDateLayout),
	}
	if err := s.api.PostComment(ctx, u.APIURL, comment); err != nil {
		return err
	}
	s.log.Info(ctx, "comment posted", "client_inn", clientINN, "author", u.ID)
	return nil
}

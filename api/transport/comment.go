package transport

import (
	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

// CreateCommentRequest is the POST /comments/ payload.
type CreateCommentRequest struct {
	Text optional.Field[string] `json:"text"`
}

func (r CreateCommentRequest) Validate() error {
	return firstError(
		fieldRequired("text", r.Text),
		checkString("text", r.Text, 1, 1023),
	)
}

// Comment materializes the validated payload.
func (r CreateCommentRequest) Comment() *domain.Comment {
	text, _ := r.Text.Get()
	return &domain.Comment{Text: text}
}

// UpdateCommentRequest is the PUT /comments/{id} payload.
type UpdateCommentRequest struct {
	Text optional.Field[string] `json:"text"`
}

func (r UpdateCommentRequest) Validate() error {
	return firstError(
		fieldNotNull("text", r.Text),
		checkString("text", r.Text, 1, 1023),
	)
}

// Patch translates the payload into a persistence patch.
func (r UpdateCommentRequest) Patch() repository.CommentPatch {
	return repository.CommentPatch{Text: r.Text}
}

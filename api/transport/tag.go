package transport

import (
	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
	"github.com/taskdesk/backend/pkg/optional"
)

// CreateTagRequest is the POST /tags/ payload.
type CreateTagRequest struct {
	Title optional.Field[string] `json:"title"`
	Color optional.Field[string] `json:"color"`
}

func (r CreateTagRequest) Validate() error {
	return firstError(
		fieldRequired("title", r.Title),
		checkString("title", r.Title, 1, 31),
		checkColor("color", r.Color),
	)
}

// Tag materializes the validated payload.
func (r CreateTagRequest) Tag() *domain.Tag {
	title, _ := r.Title.Get()
	return &domain.Tag{
		Title: title,
		Color: r.Color.Ptr(),
	}
}

// UpdateTagRequest is the PUT /tags/{id} payload.
type UpdateTagRequest struct {
	Title optional.Field[string] `json:"title"`
	Color optional.Field[string] `json:"color"`
}

func (r UpdateTagRequest) Validate() error {
	return firstError(
		fieldNotNull("title", r.Title),
		checkString("title", r.Title, 1, 31),
		checkColor("color", r.Color),
	)
}

// Patch translates the payload into a persistence patch.
func (r UpdateTagRequest) Patch() repository.TagPatch {
	return repository.TagPatch{
		Title: r.Title,
		Color: r.Color,
	}
}

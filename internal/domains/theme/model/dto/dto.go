package dto

import (
	"roomescape/internal/domains/theme/model"
	gModel "roomescape/shared/model"
	"roomescape/shared/timezone"
)

type CreateThemeRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=255"`
	Thumbnail   string `json:"thumbnail"   validate:"required,max=255"`
}

func (c *CreateThemeRequest) ToModel(user string) model.Theme {
	return model.Theme{
		Name:        c.Name,
		Description: c.Description,
		Thumbnail:   c.Thumbnail,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateThemeRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=255"`
	Thumbnail   string `db:"thumbnail"   json:"thumbnail"   validate:"omitempty,max=255"`
}

type ThemeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

func (r *ThemeResponse) FromModel(model model.Theme) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Thumbnail = model.Thumbnail
}

type PopularThemeResponse struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Thumbnail        string `json:"thumbnail"`
	ReservationCount int    `json:"reservationCount"`
}

func (r *PopularThemeResponse) FromModel(model model.PopularTheme) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Thumbnail = model.Thumbnail
	r.ReservationCount = model.ReservationCount
}

// PopularThemesRequest carries the optional ranking window overrides.
// Zero values fall back to the configured defaults.
type PopularThemesRequest struct {
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	End   string `json:"end"   validate:"omitempty,datetime=2006-01-02"`
	Limit int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
}

type UploadThumbnailRequest struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
}

type UploadThumbnailResponse struct {
	URL string `json:"url"`
}

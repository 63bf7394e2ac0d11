package v1

import (
	"time"

	"github.com/envelope-zero/insights/internal/analytics"
	ez_uuid "github.com/envelope-zero/insights/internal/uuid"
	"github.com/gin-gonic/gin"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// OwnerQuery scopes a request to a user or a family.
type OwnerQuery struct {
	User   ez_uuid.UUID `form:"user" example:"3a6e1f04-7f13-4b6c-9a68-2f7b0f2a5cc1"`   // ID of the user
	Family ez_uuid.UUID `form:"family" example:"1b7c2d44-6f0e-4a7e-9a55-0a7d3c6b2e19"` // ID of the family, takes precedence over the user
}

func (q OwnerQuery) owner() analytics.Owner {
	return analytics.Owner{
		UserID:   q.User.UUID,
		FamilyID: q.Family.UUID,
	}
}

// bindOwner reads the owner from the query string.
func bindOwner(c *gin.Context) (analytics.Owner, error) {
	var query OwnerQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		return analytics.Owner{}, err
	}

	return query.owner(), nil
}

// bindID reads the resource ID from the path.
func bindID(c *gin.Context) (ez_uuid.UUID, error) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		return ez_uuid.Nil, err
	}

	return uri.ID, nil
}

// parseDate parses a date in YYYY-MM-DD format in UTC.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return time.Time{}, errDateFormat
	}

	return t, nil
}

package catalog

import (
	"strings"

	"github.com/bazaar/backend/internal/domain/shared"
)

// ProductComment is a user review with a 1-5 score and optional text
type ProductComment struct {
	shared.BaseEntity
	Scoring   int `validate:"gte=1,lte=5"`
	Comment   *string
	ProductID int64 `validate:"required"`
	UserID    int64 `validate:"required"`
}

// NewProductComment creates a review by a user on a product
func NewProductComment(productID, userID int64, scoring int, comment string) (*ProductComment, error) {
	review := &ProductComment{
		BaseEntity: shared.NewBaseEntity(),
		Scoring:    scoring,
		ProductID:  productID,
		UserID:     userID,
	}
	if text := strings.TrimSpace(comment); text != "" {
		if len(text) > 1023 {
			return nil, shared.NewValidationError("comment", "cannot exceed 1023 characters")
		}
		review.Comment = &text
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}
	return review, nil
}

// Validate checks the comment's field rules
func (c *ProductComment) Validate() error {
	return shared.ValidateStruct(c)
}

// SetScoring updates the score within the 1-5 bounds
func (c *ProductComment) SetScoring(scoring int) error {
	if scoring < 1 {
		return shared.NewValidationError("scoring", "cannot be less than 1")
	}
	if scoring > 5 {
		return shared.NewValidationError("scoring", "cannot be more than 5")
	}
	c.Scoring = scoring
	c.Touch()
	return nil
}

package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/VitaminP8/blogql/internal/log"
	"github.com/VitaminP8/blogql/internal/storage"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

const (
	CodeDuplicateEmail       = "DUPLICATE_EMAIL"
	CodeRelationshipNotFound = "RELATIONSHIP_NOT_FOUND"
	CodeInternal             = "INTERNAL"
)

var ErrRelationshipNotFound = errors.New("relationship not found")

func duplicateEmailError(email string) error {
	return &gqlerror.Error{
		Message: "Email is already taken",
		Extensions: map[string]interface{}{
			"code":  CodeDuplicateEmail,
			"email": email,
		},
	}
}

// relationshipError: внешний ключ указывает на несуществующую запись.
// Поле в схеме non-null, поэтому это внутренняя ошибка, а null поднимается к родителю.
func relationshipError(ctx context.Context, parentType, parentID, fieldName, key string, err error) error {
	if !errors.Is(err, storage.ErrNotFound) {
		return internalError(ctx, fmt.Sprintf("resolve %s.%s", parentType, fieldName), err)
	}

	wrapped := fmt.Errorf("%s %s: %s %s: %w", parentType, parentID, fieldName, key, ErrRelationshipNotFound)
	log.FromContext(ctx).Error(wrapped, "dangling foreign key")

	return &gqlerror.Error{
		Message: wrapped.Error(),
		Extensions: map[string]interface{}{
			"code": CodeRelationshipNotFound,
		},
	}
}

func internalError(ctx context.Context, op string, err error) error {
	log.FromContext(ctx).Error(err, "storage failure", "op", op)

	return &gqlerror.Error{
		Message: fmt.Sprintf("%s: internal error", op),
		Extensions: map[string]interface{}{
			"code": CodeInternal,
		},
	}
}

package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.49

import (
	"context"
	"errors"

	"github.com/VitaminP8/blogql/graph/generated"
	"github.com/VitaminP8/blogql/graph/model"
	"github.com/VitaminP8/blogql/internal/log"
	"github.com/VitaminP8/blogql/internal/storage"
)

// Author is the resolver for the author field.
func (r *commentResolver) Author(ctx context.Context, obj *model.Comment) (*model.User, error) {
	user, err := r.UserStore.GetUserByID(obj.AuthorID)
	if err != nil {
		return nil, relationshipError(ctx, "Comment", obj.ID, "author", obj.AuthorID, err)
	}
	return user, nil
}

// Post is the resolver for the post field.
func (r *commentResolver) Post(ctx context.Context, obj *model.Comment) (*model.Post, error) {
	post, err := r.PostStore.GetPostByID(obj.PostID)
	if err != nil {
		return nil, relationshipError(ctx, "Comment", obj.ID, "post", obj.PostID, err)
	}
	return post, nil
}

// CreateUser is the resolver for the createUser field.
func (r *mutationResolver) CreateUser(ctx context.Context, name string, email string, age *int) (*model.User, error) {
	user, err := r.UserStore.CreateUser(name, email, age)
	if errors.Is(err, storage.ErrDuplicateEmail) {
		log.FromContext(ctx).V(1).Info("email is already taken", "email", email)
		return nil, duplicateEmailError(email)
	}
	if err != nil {
		return nil, internalError(ctx, "create user", err)
	}

	r.Metrics.UserCreated()
	log.FromContext(ctx).V(1).Info("user created", "id", user.ID)

	return user, nil
}

// Author is the resolver for the author field.
// Автор ищется по равенству id, сам пост не изменяется.
func (r *postResolver) Author(ctx context.Context, obj *model.Post) (*model.User, error) {
	user, err := r.UserStore.GetUserByID(obj.AuthorID)
	if err != nil {
		return nil, relationshipError(ctx, "Post", obj.ID, "author", obj.AuthorID, err)
	}
	return user, nil
}

// Comments is the resolver for the comments field.
func (r *postResolver) Comments(ctx context.Context, obj *model.Post) ([]*model.Comment, error) {
	comments, err := r.CommentStore.GetCommentsByPost(obj.ID)
	if err != nil {
		return nil, internalError(ctx, "resolve Post.comments", err)
	}
	return comments, nil
}

// Users is the resolver for the users field.
func (r *queryResolver) Users(ctx context.Context, query *string) ([]*model.User, error) {
	users, err := r.UserStore.ListUsers(deref(query))
	if err != nil {
		return nil, internalError(ctx, "list users", err)
	}
	return users, nil
}

// Posts is the resolver for the posts field.
func (r *queryResolver) Posts(ctx context.Context, query *string) ([]*model.Post, error) {
	posts, err := r.PostStore.ListPosts(deref(query))
	if err != nil {
		return nil, internalError(ctx, "list posts", err)
	}
	return posts, nil
}

// Comments is the resolver for the comments field.
func (r *queryResolver) Comments(ctx context.Context) ([]*model.Comment, error) {
	comments, err := r.CommentStore.ListComments()
	if err != nil {
		return nil, internalError(ctx, "list comments", err)
	}
	return comments, nil
}

// Posts is the resolver for the posts field.
func (r *userResolver) Posts(ctx context.Context, obj *model.User) ([]*model.Post, error) {
	posts, err := r.PostStore.GetPostsByAuthor(obj.ID)
	if err != nil {
		return nil, internalError(ctx, "resolve User.posts", err)
	}
	return posts, nil
}

// Comments is the resolver for the comments field.
func (r *userResolver) Comments(ctx context.Context, obj *model.User) ([]*model.Comment, error) {
	comments, err := r.CommentStore.GetCommentsByAuthor(obj.ID)
	if err != nil {
		return nil, internalError(ctx, "resolve User.comments", err)
	}
	return comments, nil
}

// Comment returns generated.CommentResolver implementation.
func (r *Resolver) Comment() generated.CommentResolver { return &commentResolver{r} }

// Mutation returns generated.MutationResolver implementation.
func (r *Resolver) Mutation() generated.MutationResolver { return &mutationResolver{r} }

// Post returns generated.PostResolver implementation.
func (r *Resolver) Post() generated.PostResolver { return &postResolver{r} }

// Query returns generated.QueryResolver implementation.
func (r *Resolver) Query() generated.QueryResolver { return &queryResolver{r} }

// User returns generated.UserResolver implementation.
func (r *Resolver) User() generated.UserResolver { return &userResolver{r} }

type commentResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type postResolver struct{ *Resolver }
type queryResolver struct{ *Resolver }
type userResolver struct{ *Resolver }

package resource

import (
	"context"
	"net/http"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type PlaymatePosts struct {
	*registry.Resource[model.PlaymatePostDTO, model.PlaymatePost]
}

func NewPlaymatePosts(gw *gateway.Client, cache *registry.Cache) *PlaymatePosts {
	return &PlaymatePosts{registry.New(gw, cache, registry.Spec[model.PlaymatePostDTO, model.PlaymatePost]{
		Type:     "PlaymatePost",
		Path:     "/PlaymatePost",
		FromDTO:  mapper.PlaymatePost,
		ID:       func(p model.PlaymatePost) int64 { return p.ID },
		ToCreate: func(p model.PlaymatePost) any { return mapper.PlaymatePostCreate(p) },
		ToUpdate: func(p model.PlaymatePost) any { return mapper.PlaymatePostCreate(p) },
		HasMine:  true,
	})}
}

type PlaymateJoins struct {
	*registry.Resource[model.PlaymateJoinDTO, model.PlaymateJoin]
}

func NewPlaymateJoins(gw *gateway.Client, cache *registry.Cache) *PlaymateJoins {
	return &PlaymateJoins{registry.New(gw, cache, registry.Spec[model.PlaymateJoinDTO, model.PlaymateJoin]{
		Type:    "PlaymateJoin",
		Path:    "/PlaymateJoin",
		FromDTO: mapper.PlaymateJoin,
		ID:      func(j model.PlaymateJoin) int64 { return j.ID },
	})}
}

// ForPost lists the joins of one playmate post.
func (j *PlaymateJoins) ForPost(ctx context.Context, postID int64) (*envelope.Envelope[envelope.Collection[model.PlaymateJoin]], error) {
	return j.List(ctx, registry.Params{"postId": postID})
}

// Join requests to join a playmate post. The joined post's join list and the
// post collections go stale together.
func (j *PlaymateJoins) Join(ctx context.Context, postID int64) (*envelope.Envelope[model.PlaymateJoin], error) {
	return j.Mutate(ctx, http.MethodPost, j.Path(),
		map[string]int64{"postId": postID},
		registry.ListTag(j.Type()),
		registry.ListTag("PlaymatePost"),
		registry.MyListTag("PlaymatePost"),
	)
}

// Leave withdraws a join.
func (j *PlaymateJoins) Leave(ctx context.Context, joinID int64) (*envelope.Envelope[any], error) {
	env, err := j.MutateRaw(ctx, http.MethodDelete, j.ItemPath(joinID), nil,
		registry.ItemTag(j.Type(), joinID),
		registry.ListTag(j.Type()),
		registry.ListTag("PlaymatePost"),
		registry.MyListTag("PlaymatePost"),
	)
	if err != nil {
		return nil, err
	}
	return &envelope.Envelope[any]{
		StatusCode: env.StatusCode,
		Status:     env.Status,
		Message:    env.Message,
		Errors:     env.Errors,
	}, nil
}

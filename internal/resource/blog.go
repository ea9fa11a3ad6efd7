package resource

import (
	"context"

	"github.com/courtbook/booking-client-go/internal/envelope"
	"github.com/courtbook/booking-client-go/internal/gateway"
	"github.com/courtbook/booking-client-go/internal/mapper"
	"github.com/courtbook/booking-client-go/internal/model"
	"github.com/courtbook/booking-client-go/internal/registry"
)

type Blogs struct {
	*registry.Resource[model.BlogDTO, model.Blog]
}

func NewBlogs(gw *gateway.Client, cache *registry.Cache) *Blogs {
	return &Blogs{registry.New(gw, cache, registry.Spec[model.BlogDTO, model.Blog]{
		Type:     "Blog",
		Path:     "/Blog",
		FromDTO:  mapper.Blog,
		ID:       func(b model.Blog) int64 { return b.ID },
		ToCreate: func(b model.Blog) any { return mapper.BlogCreate(b) },
		ToUpdate: func(b model.Blog) any { return mapper.BlogCreate(b) },
	})}
}

// CreateWithThumbnail creates a blog post with a thumbnail attachment.
func (b *Blogs) CreateWithThumbnail(ctx context.Context, blog model.Blog, thumbnail gateway.File) (*envelope.Envelope[model.Blog], error) {
	dto := mapper.BlogCreate(blog)
	return b.CreateMultipart(ctx, &gateway.MultipartBody{
		Fields: map[string]string{
			"title":   dto.Title,
			"content": dto.Content,
		},
		Files: []gateway.File{thumbnail},
	})
}
